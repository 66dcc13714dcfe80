// Command factory reads one JSON plant specification on stdin and writes
// one JSON planning result on stdout. Request errors are answered with a
// status:"error" document and exit code 0; stdout always carries exactly
// one JSON document, diagnostics go to stderr.
package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/beltworks/beltflow/factory"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Errorf("reading stdin failed, err:%v", err)
		fmt.Print(`{"message":"cannot read stdin","status":"error"}`)

		return
	}

	os.Stdout.Write(factory.PlanRequest(input))
}
