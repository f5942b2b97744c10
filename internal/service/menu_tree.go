package service

import (
	"sort"

	"poi-be-svc/internal/models"
	"poi-be-svc/internal/models/response"
)

// AssembleMenuTree nests a flat, display-ordered list of items into a forest.
//
// Items whose parent is missing from the list are placed among the roots so
// nothing a caller may see is dropped. Roots keep input order; each children
// list is stably sorted by order. Any depth is handled, and rows caught in a
// parent cycle are promoted to roots instead of disappearing.
func AssembleMenuTree(items []models.MenuItem) []*response.MenuNode {
	nodes := make(map[string]*response.MenuNode, len(items))
	ordered := make([]*response.MenuNode, 0, len(items))
	for i := range items {
		if _, seen := nodes[items[i].ID]; seen {
			continue
		}
		node := response.NewMenuNode(&items[i])
		nodes[node.ID] = node
		ordered = append(ordered, node)
	}

	isRoot := make(map[string]bool, len(ordered))
	parentOf := make(map[string]*response.MenuNode, len(ordered))
	for _, node := range ordered {
		if node.Parent != nil {
			if parent, ok := nodes[*node.Parent]; ok && parent != node {
				parent.Children = append(parent.Children, node)
				parentOf[node.ID] = parent
				continue
			}
		}
		isRoot[node.ID] = true
	}

	reached := make(map[string]bool, len(ordered))
	var mark func(node *response.MenuNode)
	mark = func(node *response.MenuNode) {
		if reached[node.ID] {
			return
		}
		reached[node.ID] = true
		for _, child := range node.Children {
			mark(child)
		}
	}
	for _, node := range ordered {
		if isRoot[node.ID] {
			mark(node)
		}
	}

	// whatever is still unreached sits on a parent cycle
	for _, node := range ordered {
		if reached[node.ID] {
			continue
		}
		parent := parentOf[node.ID]
		parent.Children = detachChild(parent.Children, node)
		isRoot[node.ID] = true
		mark(node)
	}

	roots := make([]*response.MenuNode, 0, len(isRoot))
	for _, node := range ordered {
		if isRoot[node.ID] {
			roots = append(roots, node)
		}
		children := node.Children
		sort.SliceStable(children, func(i, j int) bool {
			return children[i].Order < children[j].Order
		})
	}

	return roots
}

func detachChild(children []*response.MenuNode, target *response.MenuNode) []*response.MenuNode {
	for i, child := range children {
		if child == target {
			return append(children[:i], children[i+1:]...)
		}
	}
	return children
}

func countNodes(nodes []*response.MenuNode) int {
	count := len(nodes)
	for _, node := range nodes {
		count += countNodes(node.Children)
	}
	return count
}
