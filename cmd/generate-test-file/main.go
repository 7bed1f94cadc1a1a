// generate-test-file writes a snapshot with a large generated mind map, for
// exercising rendering and traversal on big documents.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"mindala/internal/model"
	"mindala/internal/storage"
)

func main() {
	numNodes := flag.Int("nodes", 1000, "Number of nodes to generate")
	output := flag.String("output", "large_test.json", "Output file path")
	depth := flag.Int("depth", 3, "Maximum nesting depth")
	flag.Parse()

	if *numNodes < 1 {
		fmt.Fprintf(os.Stderr, "nodes must be at least 1\n")
		os.Exit(1)
	}

	doc := storage.DefaultDocument()
	doc.MindMap = generateTree(*numNodes, *depth)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to marshal JSON: %v\n", err)
		os.Exit(1)
	}

	dir := filepath.Dir(*output)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create directory: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.WriteFile(*output, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated mind map with %d nodes\n", len(doc.MindMap.All()))
	fmt.Printf("Saved to: %s\n", *output)
	fmt.Printf("File size: %.2f MB\n", float64(len(data))/(1024*1024))
}

func generateTree(totalNodes int, maxDepth int) *model.Tree {
	root := model.NewNode("Generated Mind Map")
	remaining := totalNodes - 1

	for remaining > 0 {
		child := generateNode(&remaining, 1, maxDepth)
		if child != nil {
			root.Children = append(root.Children, child)
		}
	}

	return model.NewTree(root)
}

func generateNode(remaining *int, currentDepth int, maxDepth int) *model.Node {
	if *remaining <= 0 {
		return nil
	}

	node := model.NewNode(generateText(*remaining))
	*remaining--

	if currentDepth < maxDepth && *remaining > 0 {
		numChildren := childCount(*remaining, maxDepth-currentDepth)
		for i := 0; i < numChildren && *remaining > 0; i++ {
			child := generateNode(remaining, currentDepth+1, maxDepth)
			if child != nil {
				node.Children = append(node.Children, child)
			}
		}
	}

	return node
}

func childCount(remaining int, depthLeft int) int {
	if depthLeft == 1 {
		if remaining > 10 {
			return 5
		}
		return remaining / 2
	}
	if remaining > 50 {
		return 3
	}
	return 2
}

func generateText(index int) string {
	categories := []string{
		"Task", "Note", "Idea", "Question", "Theme", "Goal",
		"Research", "Design", "Plan", "Review",
	}
	return fmt.Sprintf("%s #%d", categories[index%len(categories)], index)
}
