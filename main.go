package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jiaqi-wen/excel-i18n-tool/app"
	"github.com/jiaqi-wen/excel-i18n-tool/app/export"
	"github.com/jiaqi-wen/excel-i18n-tool/app/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileName = "excel-i18n-tool.log"

func main() {
	cliArgs := app.ParseCLIArgs()

	// 1. Setup logging first.
	mainLogger := logging.NewLogger()
	mainLogger.SetDebug(cliArgs.Verbose)

	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(cliArgs.LogDir, logFileName),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}
	defer logFile.Close()

	writerCtx, cancelWriter := context.WithCancel(context.Background())
	defer cancelWriter()
	logChannel := make(chan []byte, 256)
	mainLogger.SetWriter(io.MultiWriter(logFile, logging.NewChannelWriter(writerCtx, logChannel)))

	// Set this as the default logger for any package-level calls.
	logging.SetDefault(mainLogger)

	// 2. Load settings and create the conversion service.
	settings, err := export.LoadSettings(cliArgs.Settings)
	if err != nil {
		logging.Errorf("Main: %v", err)
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	exporter := export.NewService(settings)

	// 3. Setup OS signal trapping.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// 4. Create the App structure, passing the configured logger.
	a := app.NewApp(mainLogger, exporter, logChannel, cliArgs)

	// 5. Goroutine to handle OS signals.
	go func() {
		<-sigChan
		a.QueueUpdateDraw(func() {
			a.Dialogs().ShowQuitDialog()
		})
	}()

	// 6. Run the application.
	logging.Infof("Main: Application starting up.")
	if err := a.Run(); err != nil {
		logging.Errorf("Main: Application exited with error: %v", err)
		os.Exit(1)
	}
	logging.Infof("Main: Application exited gracefully.")
}
