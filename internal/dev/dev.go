package dev

import (
	tea "charm.land/bubbletea/v2"
	"fmt"
	"github.com/robinovitch61/vl/internal/message"
	"log"
	"os"
)

var debugSet = os.Getenv("VL_DEBUG")
var debugPath = os.Getenv("VL_DEBUG_PATH")

func Debug(msg string) {
	if debugPath == "" {
		debugPath = "vl.log"
	}
	if debugSet != "" {
		file, err := os.OpenFile(debugPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		logger := log.New(file, "", log.Ldate|log.Lmicroseconds)
		logger.Printf("%q", msg)
	}
}

// Debugf is Debug with formatting, skipping the Sprintf entirely when debugging is off
func Debugf(format string, args ...any) {
	if debugSet == "" {
		return
	}
	Debug(fmt.Sprintf(format, args...))
}

func DebugUpdateMsg(component string, msg tea.Msg) {
	if debugSet == "" {
		return
	}
	switch msg.(type) {
	case message.FrameMsg, message.RedrawMsg, message.RetryChangeMsg:
	// skip logging messages that are too frequent
	default:
		Debug("--")
		Debug(fmt.Sprintf("Update %s: %T", component, msg))
		if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
			Debug(fmt.Sprintf("  Key: '%v'", keyMsg.String()))
		}
	}
}
