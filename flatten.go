package coursechef

// Flatten collapses redundant wrapper levels: a node with exactly one child
// whose title is similar to its own is replaced by that child in its
// parent's child list. The root is never replaced. Children are flattened
// before their parent is compared, so a second pass changes nothing.
// Flatten returns a new tree and leaves root untouched.
func Flatten(root *ContentNode) *ContentNode {
	if root == nil {
		return nil
	}
	out := *root
	out.Children = flattenChildren(root.Children)
	return &out
}

func flattenChildren(children []*ContentNode) []*ContentNode {
	if children == nil {
		return nil
	}
	out := make([]*ContentNode, len(children))
	for i, child := range children {
		out[i] = flattenNode(child)
	}
	return out
}

func flattenNode(n *ContentNode) *ContentNode {
	out := *n
	out.Children = flattenChildren(n.Children)
	if len(out.Children) == 1 && SimilarTitles(out.Title, out.Children[0].Title) {
		return out.Children[0]
	}
	return &out
}
