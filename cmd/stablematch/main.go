// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "stablematch",
		Usage: "Assign network nodes to serving devices with deferred acceptance",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "N",
				Usage: "number of nodes (default: random in [2,20])",
			},
			&cli.IntFlag{
				Name:  "U",
				Usage: "number of devices (default: random in [N,100])",
			},
			&cli.IntFlag{
				Name:  "cap",
				Value: 1,
				Usage: "nodes each device can serve",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed (default: time-based)",
			},
			&cli.StringFlag{
				Name:  "node",
				Usage: "read nodes from the given node.json instead of generating them",
			},
			&cli.StringFlag{
				Name:  "device",
				Usage: "read devices from the given device.json instead of generating them",
			},
			&cli.StringFlag{
				Name:  "metric",
				Value: "euclidean",
				Usage: "scoring metric: euclidean or pathloss",
			},
			&cli.BoolFlag{
				Name:  "vv",
				Usage: "trace every proposal",
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg := runConfig{
				numNodes:   -1,
				numDevices: -1,
				capacity:   ctx.Int("cap"),
				seed:       ctx.Int64("seed"),
				nodeFile:   ctx.String("node"),
				deviceFile: ctx.String("device"),
				metric:     ctx.String("metric"),
				verbose:    ctx.Bool("vv"),
			}
			if ctx.IsSet("N") {
				cfg.numNodes = ctx.Int("N")
				if cfg.numNodes < 0 {
					return errors.New("invalid N")
				}
			}
			if ctx.IsSet("U") {
				cfg.numDevices = ctx.Int("U")
				if cfg.numDevices < 0 {
					return errors.New("invalid U")
				}
			}
			if cfg.capacity < 1 {
				return errors.New("invalid cap")
			}
			return doRun(cfg)
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}
