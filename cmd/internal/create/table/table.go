package table

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nathanhack/leech/golay/coset"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Verbose  bool
	Progress bool
)

var TableRun = func(cmd *cobra.Command, args []string) {
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

	t, err := coset.Search(ctx, Progress)
	if err != nil {
		fmt.Println("Unable to build the coset-leader table: ", err)
		return
	}

	err = coset.Save(args[0], t)
	if err != nil {
		fmt.Println("unable to write file: ", err)
		return
	}

	fmt.Printf("%v rows written to %v (md5 %v)\n", t.Len(), args[0], t.Checksum())
}
