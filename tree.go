package narrate

// taggedLineKind pairs a tokenized line with its 1-based source line number.
// The tree builders carry the number but do not read it; a build failure is
// located by its stitch group's first line instead (see parseKnot).
type taggedLineKind struct {
	kind LineKind
	line int
}

// buildSequence is the recursive-descent half of the two-phase
// transformation (spec.md §1): it walks a stitch's tokenized lines and
// assembles the nested ContentNode tree, stopping when it meets a line that
// belongs to an enclosing level (a gather or choice line at depth <
// minDepth). It returns the index of the first line not consumed.
func buildSequence(lines []taggedLineKind, pos int, minDepth uint8) (ContentNode, int, error) {
	var children []ContentNode

	for pos < len(lines) {
		tl := lines[pos]
		switch k := tl.kind.(type) {
		case TextLineKind:
			children = append(children, LineNode{Line: k.Line})
			pos++

		case DivertLineKind:
			children = append(children, LineNode{Line: &InternalLine{Divert: k.Target}})
			pos++

		case GatherLineKind:
			if k.Depth < minDepth {
				return SequenceNode{Children: children}, pos, nil
			}
			children = append(children, LineNode{Line: k.Line})
			pos++

		case ChoiceLineKind:
			if k.Depth < minDepth {
				return SequenceNode{Children: children}, pos, nil
			}
			set, next, err := buildChoiceSet(lines, pos, k.Depth)
			if err != nil {
				return nil, pos, err
			}
			children = append(children, set)
			pos = next

		default:
			return nil, pos, InternalError{Msg: "unrecognized LineKind from tokenizer"}
		}
	}

	return SequenceNode{Children: children}, pos, nil
}

// buildChoiceSet consumes every consecutive ChoiceLineKind at exactly depth,
// each followed by its body (every line belonging to that branch, i.e.
// everything until the next sibling choice or an enclosing gather).
func buildChoiceSet(lines []taggedLineKind, pos int, depth uint8) (ContentNode, int, error) {
	var branches []*ChoiceBranch

	for pos < len(lines) {
		cl, ok := lines[pos].kind.(ChoiceLineKind)
		if !ok || cl.Depth != depth {
			break
		}
		pos++

		body, next, err := buildSequence(lines, pos, depth+1)
		if err != nil {
			return nil, pos, err
		}
		pos = next

		branches = append(branches, &ChoiceBranch{Data: cl.Choice, Body: body})
	}

	return ChoiceSetNode{Branches: branches}, pos, nil
}
