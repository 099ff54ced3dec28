package commands

import (
	"fmt"
	"os"

	"mediavault/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("mediavault error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println(`mediavault

usage:
  mediavault run <config.yml>                     start the API server
  mediavault upload <config.yml> <file> [flags]   upload a file and record it
  mediavault version
  mediavault help

upload flags:
  -email, -password     account credentials
  -title, -description  media record fields
  -kind                 image or video (default image)`)
}
