package linetok

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stringhandler/narrate"
)

// parseConditions consumes zero or more leading "{...}" blocks from text,
// returning the parsed conditions and whatever remains. Authors AND
// conditions together by simply writing more than one block:
// "{intro > 0}{!ending == 1} text".
func parseConditions(text string) ([]narrate.Condition, string, error) {
	var conds []narrate.Condition

	rest := strings.TrimLeft(text, " \t")
	for strings.HasPrefix(rest, "{") {
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return nil, "", fmt.Errorf("unterminated condition block in %q", text)
		}
		body := rest[1:end]
		cond, err := parseCondition(body)
		if err != nil {
			return nil, "", err
		}
		conds = append(conds, cond)
		rest = strings.TrimLeft(rest[end+1:], " \t")
	}
	return conds, rest, nil
}

// parseCondition reads one condition body, e.g. "!intro.start == 2" or
// "chapter_one > 0". Grammar: ["!"] target (<|==|>) rhs.
func parseCondition(body string) (narrate.Condition, error) {
	body = strings.TrimSpace(body)

	negate := false
	if strings.HasPrefix(body, "!") {
		negate = true
		body = strings.TrimSpace(body[1:])
	}

	op, opStr := "", ""
	for _, candidate := range []string{"==", "<", ">"} {
		if idx := strings.Index(body, candidate); idx >= 0 {
			op, opStr = candidate, candidate
			_ = idx
			break
		}
	}
	if opStr == "" {
		return nil, fmt.Errorf("condition %q has no comparison operator", body)
	}

	idx := strings.Index(body, op)
	target := strings.TrimSpace(body[:idx])
	rhsStr := strings.TrimSpace(body[idx+len(op):])
	if target == "" {
		return nil, fmt.Errorf("condition %q has no target reference", body)
	}

	rhs, err := strconv.ParseInt(rhsStr, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("condition %q has a non-integer right-hand side: %w", body, err)
	}

	var order narrate.Ordering
	switch op {
	case "<":
		order = narrate.OrderingLess
	case "==":
		order = narrate.OrderingEqual
	case ">":
		order = narrate.OrderingGreater
	}

	return narrate.NumVisitsCondition{
		Target: narrate.Reference(target),
		RHS:    int32(rhs),
		Order:  order,
		Negate: negate,
	}, nil
}
