package main

import "github.com/charmbracelet/lipgloss"

var (
	// successStyle for the final summary line
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// errorStyle for error indicators
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)
