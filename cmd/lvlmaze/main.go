// Command lvlmaze solves, renders and inspects text grid mazes.
//
//	lvlmaze solve maps/room.txt
//	lvlmaze --log-level debug solve --lenient maps/edge.txt
//	lvlmaze render --flat maps/room.txt
//	lvlmaze inspect maps/room.txt
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvlmaze/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
