package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cblte/simple-filament-manager/internal/testutil"
	"github.com/joho/godotenv"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Run a disposable MariaDB container for local development.
Prints the matching DB_* environment for the server, terminates on Ctrl-C.

Usage:

devdb [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file (TEST_DB_IMAGE overrides the image)

example
  devdb -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGTSTP, syscall.SIGQUIT)

	db, err := testutil.StartMariaDB(context.Background())
	if err != nil {
		log.Fatalf("Failed to start MariaDB container: %v\n", err)
	}

	fmt.Println("MariaDB is up. Server environment:")
	fmt.Printf("DB_TYPE=mariadb\n")
	fmt.Printf("DB_HOST=%s\n", db.Host)
	fmt.Printf("DB_PORT=%s\n", db.Port)
	fmt.Printf("DB_DATABASE=%s\n", db.Database)
	fmt.Printf("DB_USER=%s\n", db.User)
	fmt.Printf("DB_PASSWORD=%s\n", db.Password)

	sig := <-sigs
	log.Printf("\nReceived signal: %v, terminating container...\n", sig)
	db.Terminate(nil)
}
