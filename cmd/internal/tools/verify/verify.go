package verify

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nathanhack/leech/cmd/internal/tools"
	"github.com/nathanhack/leech/golay/coset"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Threads uint
	Rebuild bool
	Verbose bool
)

var VerifyRun = func(cmd *cobra.Command, args []string) {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := <-sigs
		fmt.Println()
		fmt.Println(sig)
		cancel()
	}()

	t, err := tools.LoadTable(args[0])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	err = t.Verify(ctx, int(Threads))
	if err != nil {
		fmt.Println("table failed verification: ", err)
		os.Exit(1)
	}

	if Rebuild {
		rebuilt, err := coset.Search(ctx, false)
		if err != nil {
			fmt.Println("unable to rebuild reference table: ", err)
			os.Exit(1)
		}

		expected, _ := rebuilt.MarshalBinary()
		actual, _ := t.MarshalBinary()
		if !bytes.Equal(expected, actual) {
			fmt.Println("table differs from a fresh canonical build")
			os.Exit(1)
		}
	}

	fmt.Printf("%v rows ok (md5 %v)\n", t.Len(), t.Checksum())
}
