package cmd

import (
	"fmt"
	"log"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDoc = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// meta is for describing the position/info for a command doc page
type meta struct {
	title    string
	navOrder int
}

// map from the base Markdown file name to its page meta
var metaMap = map[string]meta{
	"centrifuge":          {"centrifuge", 0},
	"centrifuge_build":    {"build", 0},
	"centrifuge_classify": {"classify", 1},
	"centrifuge_inspect":  {"inspect", 2},
}

// docsCmd regenerates the Markdown documentation pages for the commands
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate Markdown documentation pages",
	Run:    makeDocs,
	Hidden: true,
}

// set flags
func init() {
	docsCmd.Flags().StringP("out", "o", "./docs", "directory to write the Markdown pages to")

	rootCmd.AddCommand(docsCmd)
}

// makeDocs parses the commands and outputs Markdown documentation files
func makeDocs(cmd *cobra.Command, args []string) {
	dir, _ := cmd.Flags().GetString("out")
	if err := doc.GenMarkdownTreeCustom(rootCmd, dir, filePrepender, linkHandler); err != nil {
		log.Fatalf("%v", err)
	}
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m, ok := metaMap[base]
	if !ok {
		return ""
	}

	if base == "centrifuge" {
		return fmt.Sprintf(rootDoc, m.title, m.navOrder)
	}
	return fmt.Sprintf(childDoc, m.title, "centrifuge", m.navOrder)
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "centrifuge" {
		return "/"
	}
	return base
}
