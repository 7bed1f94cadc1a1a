// Package outline converts between mind map trees and the indented
// plain-text outline format. One node per non-blank line, hierarchy encoded
// by leading whitespace (two spaces per level, tabs count as two spaces) and
// an optional bullet marker.
package outline

import (
	"bufio"
	"strings"

	"mindala/internal/model"
)

// SyntheticRootText labels the root created when the input does not start
// with a line at depth zero.
const SyntheticRootText = "Root"

type line struct {
	depth int
	text  string
}

// Parse converts indented text to a mind map tree. Blank lines are dropped,
// indentation that is not a multiple of two rounds down, and a missing
// top-level line is compensated by a synthetic root. Input without any
// parseable line yields a minimal single-node tree; Parse never fails.
func Parse(content string) *model.Tree {
	lines := scanLines(content)
	if len(lines) == 0 {
		return model.DefaultTree()
	}

	type frame struct {
		node  *model.Node
		depth int
	}

	var root *model.Node
	var stack []frame
	if lines[0].depth == 0 {
		// The first line is the explicit root and is consumed here.
		root = model.NewNode(lines[0].text)
		stack = []frame{{root, 0}}
		lines = lines[1:]
	} else {
		// Synthetic root at depth -1 so even depth-0 lines attach below it.
		root = model.NewNode(SyntheticRootText)
		stack = []frame{{root, -1}}
	}

	for _, ln := range lines {
		for len(stack) > 0 && stack[len(stack)-1].depth >= ln.depth {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			// Pathological indentation: nothing to attach to, drop the line.
			continue
		}
		parent := stack[len(stack)-1].node
		node := model.NewNode(ln.text)
		parent.Children = append(parent.Children, node)
		stack = append(stack, frame{node, ln.depth})
	}

	return &model.Tree{Root: root}
}

func scanLines(content string) []line {
	var out []line
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		raw := scanner.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		depth := indentDepth(raw)
		text := stripBullet(strings.TrimSpace(raw))
		out = append(out, line{depth: depth, text: text})
	}
	return out
}

// indentDepth measures leading whitespace and converts it to a depth level.
// Each tab counts as two spaces; two spaces make one level; remainders round
// down.
func indentDepth(s string) int {
	width := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\t':
			width += 2
		case ' ':
			width++
		default:
			return width / 2
		}
	}
	return width / 2
}

// stripBullet removes a leading list marker ("-", "+" or "*" followed by
// whitespace) from an already-trimmed line.
func stripBullet(s string) string {
	if len(s) >= 2 && (s[0] == '-' || s[0] == '+' || s[0] == '*') && (s[1] == ' ' || s[1] == '\t') {
		return strings.TrimSpace(s[2:])
	}
	return s
}
