// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"

	"github.com/devblok/koru/device"
	log "github.com/sirupsen/logrus"
)

// EnumerateDevices snapshots every physical device visible to the instance
func EnumerateDevices(inst *Instance) ([]device.Candidate, error) {
	physicalDevices, err := inst.native.PhysicalDevices()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoDevicesFound, err)
	}
	if len(physicalDevices) == 0 {
		return nil, ErrNoDevicesFound
	}

	candidates := make([]device.Candidate, 0, len(physicalDevices))
	for idx, pd := range physicalDevices {
		candidates = append(candidates, device.Snapshot(idx, pd))
	}
	return candidates, nil
}

// Selection is the outcome of device selection
type Selection struct {
	Candidate   device.Candidate
	Score       int
	QueueFamily uint32
}

// ScoredCandidate pairs a candidate with its score
type ScoredCandidate struct {
	device.Candidate `yaml:",inline"`

	Score  int  `json:"score" yaml:"score"`
	Chosen bool `json:"chosen" yaml:"chosen"`
}

// Rank scores every candidate and marks the one selection would choose.
// Order of candidates is kept.
func Rank(candidates []device.Candidate, rules []ScoreRule, req device.Requirement) []ScoredCandidate {
	ranked := make([]ScoredCandidate, len(candidates))
	best := -1
	for idx, c := range candidates {
		ranked[idx] = ScoredCandidate{
			Candidate: c,
			Score:     Score(c, rules, req),
		}
		if ranked[idx].Score > 0 && (best < 0 || ranked[idx].Score > ranked[best].Score) {
			best = idx
		}
	}
	if best >= 0 {
		ranked[best].Chosen = true
	}
	return ranked
}

// SelectDevice picks the highest scoring candidate, the earliest one on
// ties, and resolves its queue family. When verbose is set every
// candidate is logged.
func SelectDevice(candidates []device.Candidate, rules []ScoreRule, req device.Requirement, logger log.FieldLogger, verbose bool) (Selection, error) {
	if len(candidates) == 0 {
		return Selection{}, ErrNoDevicesFound
	}

	ranked := Rank(candidates, rules, req)

	if verbose {
		for _, rc := range ranked {
			logger.WithFields(log.Fields{
				"device": rc.Properties.Name,
				"class":  rc.Properties.Class.String(),
				"api":    FormatVersion(uint32(rc.Properties.APIVersion)),
				"score":  rc.Score,
				"chosen": rc.Chosen,
			}).Info("Vulkan device")
		}
	}

	for _, rc := range ranked {
		if !rc.Chosen {
			continue
		}
		family, ok := device.FindQueueFamily(rc.Candidate, req)
		if !ok {
			// a positive score implies a matching family
			break
		}
		return Selection{
			Candidate:   rc.Candidate,
			Score:       rc.Score,
			QueueFamily: family,
		}, nil
	}

	return Selection{}, ErrNoSuitableDevice
}
