package script

import (
	"fmt"
	"strconv"

	"github.com/gobwas/glob"
	"llist/list"
)

type operation struct {
	args int
	exec func(l *list.List[string], instruction *Instruction) (string, error)
}

var operations = map[string]operation{
	"append": {1, func(l *list.List[string], in *Instruction) (string, error) {
		l.Append(in.Args[0])
		return l.String(), nil
	}},
	"prepend": {1, func(l *list.List[string], in *Instruction) (string, error) {
		l.Prepend(in.Args[0])
		return l.String(), nil
	}},
	"insertAt": {2, func(l *list.List[string], in *Instruction) (string, error) {
		index, err := parseIndex(in.Args[1])
		if err != nil {
			return "", err
		}
		if err = l.InsertAt(in.Args[0], index); err != nil {
			return "", err
		}
		return l.String(), nil
	}},
	"removeAt": {1, func(l *list.List[string], in *Instruction) (string, error) {
		index, err := parseIndex(in.Args[0])
		if err != nil {
			return "", err
		}
		return l.RemoveAt(index)
	}},
	"pop": {0, func(l *list.List[string], _ *Instruction) (string, error) {
		return l.Pop()
	}},
	"shift": {0, func(l *list.List[string], _ *Instruction) (string, error) {
		return l.Shift()
	}},
	"at": {1, func(l *list.List[string], in *Instruction) (string, error) {
		index, err := parseIndex(in.Args[0])
		if err != nil {
			return "", err
		}
		return l.At(index)
	}},
	"contains": {1, func(l *list.List[string], in *Instruction) (string, error) {
		return strconv.FormatBool(l.Contains(in.Args[0])), nil
	}},
	"find": {1, func(l *list.List[string], in *Instruction) (string, error) {
		index, err := l.Find(in.Args[0])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(index), nil
	}},
	"match": {1, func(l *list.List[string], in *Instruction) (string, error) {
		index, err := l.FindFunc(in.matcher.Match)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(index), nil
	}},
	"peekFirst": {0, func(l *list.List[string], _ *Instruction) (string, error) {
		return l.PeekFirst()
	}},
	"peekLast": {0, func(l *list.List[string], _ *Instruction) (string, error) {
		return l.PeekLast()
	}},
	"size": {0, func(l *list.List[string], _ *Instruction) (string, error) {
		return strconv.Itoa(l.Len()), nil
	}},
	"isEmpty": {0, func(l *list.List[string], _ *Instruction) (string, error) {
		return strconv.FormatBool(l.IsEmpty()), nil
	}},
	"clear": {0, func(l *list.List[string], _ *Instruction) (string, error) {
		l.Clear()
		return l.String(), nil
	}},
	"print": {0, func(l *list.List[string], _ *Instruction) (string, error) {
		return l.String(), nil
	}},
}

// parseIndex reports tokens that are not integers as invalid indices, the
// same condition an out of range integer gets.
func parseIndex(token string) (int, error) {
	index, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: '%v' is not an integer", list.ErrInvalidIndex, token)
	}
	return index, nil
}

func compileMatcher(pattern string) (glob.Glob, error) {
	return glob.Compile(pattern)
}
