package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"trove/internal/config"
	"trove/internal/eventbus"
	"trove/internal/ui"
	"trove/internal/workspace"
)

func main() {
	logPath := flag.String("log", "trove.log", "log file path")
	configPath := flag.String("config", "", "config file path (defaults to the user config dir)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configSvc := config.NewConfigService()
	var cfg *config.Config
	if *configPath != "" {
		cfg, err = configSvc.LoadFromPath(*configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		log.Printf("Error loading config: %v", err)
		// Use default config
		cfg = config.DefaultConfig()
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Build the workspace and seed demo content
	store := workspace.NewStore(bus)
	workspace.Seed(store)

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, store)

	// Create Bubble Tea program
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UISettings.MouseEnabled {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventItemsMoved, forward)
	bus.Subscribe(eventbus.EventItemDuplicated, forward)
	bus.Subscribe(eventbus.EventFolderCreated, forward)
	bus.Subscribe(eventbus.EventItemRenamed, forward)
	bus.Subscribe(eventbus.EventItemsDeleted, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	close(eventChan)
}
