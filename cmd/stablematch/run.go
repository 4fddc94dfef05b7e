// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/someonegg/stablematch/netscore"
	"github.com/someonegg/stablematch/wireless"
)

type runConfig struct {
	numNodes   int // -1: random default
	numDevices int // -1: random default
	capacity   int
	seed       int64
	nodeFile   string
	deviceFile string
	metric     string
	verbose    bool
}

type nodeList struct {
	Nodes []wireless.Node `json:"nodes"`
}

type deviceList struct {
	Devices []wireless.Device `json:"devices"`
}

func doRun(cfg runConfig) error {
	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	scorer, err := pickScorer(cfg.metric)
	if err != nil {
		return err
	}

	numNodes, numDevices := cfg.numNodes, cfg.numDevices
	if numNodes < 0 || numDevices < 0 {
		randNodes, randDevices := wireless.RandomPopulation(rng)
		if numNodes < 0 {
			numNodes = randNodes
		}
		if numDevices < 0 {
			numDevices = randDevices
		}
	}

	nodes, devices := wireless.GenTopology(numNodes, numDevices, rng)

	if cfg.nodeFile != "" {
		nodes, err = loadNodes(cfg.nodeFile)
		if err != nil {
			return fmt.Errorf("load node file failed: %w", err)
		}
	}
	if cfg.deviceFile != "" {
		devices, err = loadDevices(cfg.deviceFile)
		if err != nil {
			return fmt.Errorf("load device file failed: %w", err)
		}
	}

	matcher := &wireless.Matcher{
		Capacity: &cfg.capacity,
		Scorer:   scorer,
		Verbose:  cfg.verbose,
	}

	plan, summ, err := matcher.Match(nodes, devices)
	if err != nil {
		return err
	}

	for _, pair := range plan.Pairs {
		if pair.Device < 0 {
			fmt.Printf("node %d -> unmatched\n", pair.Node)
		} else {
			fmt.Printf("node %d -> device %d\n", pair.Node, pair.Device)
		}
	}
	fmt.Printf("%+v\n", summ)

	return nil
}

func pickScorer(metric string) (netscore.Scorer, error) {
	switch metric {
	case "euclidean":
		return netscore.Euclidean{}, nil
	case "pathloss":
		return netscore.PathLoss{}, nil
	}
	return nil, fmt.Errorf("unknown metric %q", metric)
}

func loadNodes(file string) ([]wireless.Node, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var list nodeList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list.Nodes, nil
}

func loadDevices(file string) ([]wireless.Device, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var list deviceList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list.Devices, nil
}
