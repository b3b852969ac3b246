package main

import (
	"io"
	"os"
)

// Environment variable names read by the sync command.
const (
	EnvAPIKey    = "README_API_KEY"
	EnvImageRepo = "IMAGE_REPO"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
}
