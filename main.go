package main

import (
	"TermSnake/client"
	"TermSnake/teaui"
	"os"
)

func main() {
	cfg := client.DefaultConfig()

	var err error
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		os.Stdout.WriteString("Snake in the terminal, steer with w/a/s/d, i/j/k/l or the arrow keys, pause with p or Esc and quit with q.\r\nUse -t or --tea to play through the Bubble Tea interface.\r\n")
		return
	} else if len(os.Args) > 1 && (os.Args[1] == "-t" || os.Args[1] == "--tea") {
		err = teaui.Run(cfg)
	} else {
		err = client.Run(cfg)
	}

	if err != nil {
		os.Stderr.WriteString(err.Error() + "\r\n")
		os.Exit(1)
	}
}
