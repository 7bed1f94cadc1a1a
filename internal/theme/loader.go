package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig represents the raw TOML theme configuration. Missing colors
// fall back to the Tokyo Night values.
type ThemeConfig struct {
	Name   string `toml:"name"`
	Colors struct {
		Background         string `toml:"background"`
		TreeNormalText     string `toml:"tree_normal_text"`
		TreeSelectedItem   string `toml:"tree_selected_item"`
		TreeAnchorItem     string `toml:"tree_anchor_item"`
		TreeExpandedArrow  string `toml:"tree_expanded_arrow"`
		TreeCollapsedArrow string `toml:"tree_collapsed_arrow"`
		TreeLeafMarker     string `toml:"tree_leaf_marker"`
		GridBorder         string `toml:"grid_border"`
		GridCellText       string `toml:"grid_cell_text"`
		GridThemeCell      string `toml:"grid_theme_cell"`
		GridCursorCell     string `toml:"grid_cursor_cell"`
		EditorText         string `toml:"editor_text"`
		EditorCursor       string `toml:"editor_cursor"`
		SearchLabel        string `toml:"search_label"`
		SearchText         string `toml:"search_text"`
		SearchCursor       string `toml:"search_cursor"`
		SearchMatch        string `toml:"search_match"`
		CommandPrompt      string `toml:"command_prompt"`
		CommandText        string `toml:"command_text"`
		CommandCursor      string `toml:"command_cursor"`
		HelpBackground     string `toml:"help_background"`
		HelpBorder         string `toml:"help_border"`
		HelpTitle          string `toml:"help_title"`
		HelpContent        string `toml:"help_content"`
		StatusMode         string `toml:"status_mode"`
		StatusMessage      string `toml:"status_message"`
		StatusModified     string `toml:"status_modified"`
		HeaderTitle        string `toml:"header_title"`
	} `toml:"colors"`
}

// getThemePaths returns the search paths for theme files
func getThemePaths() []string {
	paths := []string{}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mindala", "themes"))
		paths = append(paths, filepath.Join(home, ".local", "share", "mindala", "themes"))
	}

	return paths
}

// findThemeFile searches for a theme file in standard locations
func findThemeFile(themeName string) (string, error) {
	filename := themeName + ".toml"

	for _, dir := range getThemePaths() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("theme file not found: %s", filename)
}

// LoadThemeFromFile loads a theme from a TOML file
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config ThemeConfig
	err = toml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return configToTheme(config), nil
}

// LoadTheme loads a theme by name, searching standard theme directories
func LoadTheme(themeName string) (*Theme, error) {
	filePath, err := findThemeFile(themeName)
	if err != nil {
		return nil, err
	}

	return LoadThemeFromFile(filePath)
}

// configToTheme converts a ThemeConfig to a Theme, starting from Tokyo Night
func configToTheme(config ThemeConfig) *Theme {
	t := TokyoNight()
	c := &t.Colors

	override(&c.Background, config.Colors.Background)
	override(&c.TreeNormalText, config.Colors.TreeNormalText)
	override(&c.TreeSelectedItem, config.Colors.TreeSelectedItem)
	override(&c.TreeAnchorItem, config.Colors.TreeAnchorItem)
	override(&c.TreeExpandedArrow, config.Colors.TreeExpandedArrow)
	override(&c.TreeCollapsedArrow, config.Colors.TreeCollapsedArrow)
	override(&c.TreeLeafMarker, config.Colors.TreeLeafMarker)
	override(&c.GridBorder, config.Colors.GridBorder)
	override(&c.GridCellText, config.Colors.GridCellText)
	override(&c.GridThemeCell, config.Colors.GridThemeCell)
	override(&c.GridCursorCell, config.Colors.GridCursorCell)
	override(&c.EditorText, config.Colors.EditorText)
	override(&c.EditorCursor, config.Colors.EditorCursor)
	override(&c.SearchLabel, config.Colors.SearchLabel)
	override(&c.SearchText, config.Colors.SearchText)
	override(&c.SearchCursor, config.Colors.SearchCursor)
	override(&c.SearchMatch, config.Colors.SearchMatch)
	override(&c.CommandPrompt, config.Colors.CommandPrompt)
	override(&c.CommandText, config.Colors.CommandText)
	override(&c.CommandCursor, config.Colors.CommandCursor)
	override(&c.HelpBackground, config.Colors.HelpBackground)
	override(&c.HelpBorder, config.Colors.HelpBorder)
	override(&c.HelpTitle, config.Colors.HelpTitle)
	override(&c.HelpContent, config.Colors.HelpContent)
	override(&c.StatusMode, config.Colors.StatusMode)
	override(&c.StatusMessage, config.Colors.StatusMessage)
	override(&c.StatusModified, config.Colors.StatusModified)
	override(&c.HeaderTitle, config.Colors.HeaderTitle)

	if config.Name != "" {
		t.Name = config.Name
	}

	return t
}

func override(dst *tcell.Color, value string) {
	if value != "" {
		*dst = ParseColorString(value)
	}
}

// LoadThemeOrDefault loads a theme by name, or returns Tokyo Night if not found
func LoadThemeOrDefault(themeName string) *Theme {
	if themeName == "default" {
		return Default()
	}

	theme, err := LoadTheme(themeName)
	if err != nil {
		return TokyoNight()
	}

	return theme
}
