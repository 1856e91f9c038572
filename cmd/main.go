// FilePath: cmd/main.go
package main

import (
	"fmt"
	"log"
	"os"

	tm "github.com/buger/goterm"
	_ "github.com/roomclimate/hub/docs"
	"github.com/roomclimate/hub/internal/config"
	"github.com/roomclimate/hub/internal/server"
	nuts "github.com/vaudience/go-nuts"
)

func main() {
	// Clear console and draw logo
	ClearConsole()
	DrawLogo()
	// Initialize version info
	nuts.InitVersion()
	nuts.L.Infof("[Main] Starting Room Climate Hub v%s", nuts.GetVersion())

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create and start server
	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		nuts.L.Errorf("[Main] Server error: %v", err)
		os.Exit(1)
	}
}

// ClearConsole clears the console screen and draws the logo.
func ClearConsole() {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Flush()
}

func DrawLogo() {
	fmt.Println()
	lines := []string{
		"    ____                        ______                     ",
		"   / __ \\ ____   ____   ____ _ /_  __/___   ____ ___   ____ ",
		"  / /_/ // __ \\ / __ \\ / __ `/  / /  / _ \\ / __ `__ \\ / __ \\",
		" / _, _// /_/ // /_/ // / / /  / /  /  __// / / / / // /_/ /",
		"/_/ |_| \\____/ \\____//_/ /_/  /_/   \\___//_/ /_/ /_// .___/ ",
		"....................................................../_/  " + nuts.GetVersion(),
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
