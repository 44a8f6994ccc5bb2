// @title        EcoQuiz API
// @version      1.0
// @description  Environmental quiz generation and chat backed by a language model.
// @BasePath     /
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
