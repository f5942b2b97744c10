package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poi-be-svc/internal/models"
	"poi-be-svc/internal/models/response"
)

func treeItem(id string, parent string, order int) models.MenuItem {
	item := models.MenuItem{
		ID:        id,
		Name:      id,
		MenuType:  models.MenuTypeLink,
		Link:      "/" + id,
		SortOrder: order,
		IsGlobal:  true,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if parent != "" {
		p := parent
		item.ParentID = &p
	}
	return item
}

func nodeIDs(nodes []*response.MenuNode) []string {
	ids := make([]string, 0, len(nodes))
	for _, node := range nodes {
		ids = append(ids, node.ID)
	}
	return ids
}

func TestAssembleMenuTree_Empty(t *testing.T) {
	tree := AssembleMenuTree(nil)
	assert.NotNil(t, tree)
	assert.Empty(t, tree)
}

func TestAssembleMenuTree_SortsChildrenOnly(t *testing.T) {
	items := []models.MenuItem{
		treeItem("r2", "", 5),
		treeItem("r1", "", 1),
		treeItem("c2", "r1", 2),
		treeItem("c0", "r1", 0),
		treeItem("c1", "r1", 1),
	}

	tree := AssembleMenuTree(items)

	assert.Equal(t, []string{"r2", "r1"}, nodeIDs(tree))
	assert.Empty(t, tree[0].Children)
	assert.Equal(t, []string{"c0", "c1", "c2"}, nodeIDs(tree[1].Children))
}

func TestAssembleMenuTree_ChildrenTieKeepsInputOrder(t *testing.T) {
	items := []models.MenuItem{
		treeItem("root", "", 0),
		treeItem("b", "root", 1),
		treeItem("a", "root", 1),
		treeItem("z", "root", -3),
	}

	tree := AssembleMenuTree(items)
	require.Len(t, tree, 1)
	assert.Equal(t, []string{"z", "b", "a"}, nodeIDs(tree[0].Children))
}

func TestAssembleMenuTree_OrphansBecomeRoots(t *testing.T) {
	items := []models.MenuItem{
		treeItem("root", "", 0),
		treeItem("orphan", "hidden-parent", 0),
		treeItem("child", "root", 0),
	}

	tree := AssembleMenuTree(items)

	assert.Equal(t, []string{"root", "orphan"}, nodeIDs(tree))
	require.NotNil(t, tree[1].Parent)
	assert.Equal(t, "hidden-parent", *tree[1].Parent)
	assert.Equal(t, 3, countNodes(tree))
}

func TestAssembleMenuTree_ChildBeforeParentInInput(t *testing.T) {
	items := []models.MenuItem{
		treeItem("child", "root", 0),
		treeItem("root", "", 0),
	}

	tree := AssembleMenuTree(items)
	assert.Equal(t, []string{"root"}, nodeIDs(tree))
	assert.Equal(t, []string{"child"}, nodeIDs(tree[0].Children))
}

func TestAssembleMenuTree_ArbitraryDepth(t *testing.T) {
	items := []models.MenuItem{
		treeItem("a", "", 0),
		treeItem("b", "a", 0),
		treeItem("c", "b", 0),
		treeItem("d", "c", 0),
	}

	tree := AssembleMenuTree(items)
	require.Len(t, tree, 1)
	node := tree[0]
	for _, id := range []string{"b", "c", "d"} {
		require.Len(t, node.Children, 1)
		node = node.Children[0]
		assert.Equal(t, id, node.ID)
	}
	assert.Empty(t, node.Children)
}

func TestAssembleMenuTree_CyclesDoNotLoseNodes(t *testing.T) {
	items := []models.MenuItem{
		treeItem("self", "self", 0),
		treeItem("x", "y", 0),
		treeItem("y", "x", 0),
		treeItem("root", "", 0),
	}

	tree := AssembleMenuTree(items)

	assert.Equal(t, []string{"self", "x", "root"}, nodeIDs(tree))
	assert.Equal(t, []string{"y"}, nodeIDs(tree[1].Children))
	assert.Empty(t, tree[1].Children[0].Children)
	assert.Equal(t, len(items), countNodes(tree))
}

func TestAssembleMenuTree_DuplicateRowsKeepFirst(t *testing.T) {
	first := treeItem("a", "", 0)
	dup := treeItem("a", "", 9)
	dup.Name = "duplicate"

	tree := AssembleMenuTree([]models.MenuItem{first, dup})
	require.Len(t, tree, 1)
	assert.Equal(t, "a", tree[0].Name)
}

func TestAssembleMenuTree_LeavesHaveEmptyChildren(t *testing.T) {
	tree := AssembleMenuTree([]models.MenuItem{treeItem("leaf", "", 0)})
	require.Len(t, tree, 1)
	assert.NotNil(t, tree[0].Children)
	assert.Len(t, tree[0].Children, 0)
}
