// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "github.com/devblok/koru/device"

// ScoreRule adds Weight to a candidate's score when Match holds
type ScoreRule struct {
	Name   string
	Weight int
	Match  func(device.Candidate) bool
}

// DefaultScoreRules rate device class and tessellation support.
// Discrete and integrated GPUs get the same bonus, so class alone
// expresses no preference between them.
var DefaultScoreRules = []ScoreRule{
	{
		Name:   "discrete-gpu",
		Weight: 1000,
		Match: func(c device.Candidate) bool {
			return c.Properties.Class == device.ClassDiscreteGPU
		},
	},
	{
		Name:   "integrated-gpu",
		Weight: 1000,
		Match: func(c device.Candidate) bool {
			return c.Properties.Class == device.ClassIntegratedGPU
		},
	},
	{
		Name:   "tessellation-shader",
		Weight: 1000,
		Match: func(c device.Candidate) bool {
			return c.Features.TessellationShader
		},
	},
}

// Score rates a candidate. A candidate without a queue family that
// satisfies req scores 0 whatever the rules say.
func Score(c device.Candidate, rules []ScoreRule, req device.Requirement) int {
	var score int
	for _, rule := range rules {
		if rule.Match(c) {
			score += rule.Weight
		}
	}

	if _, ok := device.FindQueueFamily(c, req); !ok {
		return 0
	}
	return score
}
