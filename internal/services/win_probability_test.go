package services

import (
	"math/rand"
	"testing"
)

func TestComputeWinProbabilitiesSoleLeaderDominates(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	contenders := []WinProbContender{
		{EntryID: "leader", ScoreToPar: -10, CompletedHoles: 70, IsHuman: false, GolferOverall: 90},
		{EntryID: "chaser", ScoreToPar: 2, CompletedHoles: 70, IsHuman: false, GolferOverall: 70},
	}
	probs := ComputeWinProbabilities(rng, contenders)

	if probs["leader"] <= probs["chaser"] {
		t.Errorf("leader should have a higher win probability than the chaser, got leader=%v chaser=%v",
			probs["leader"], probs["chaser"])
	}
}

func TestComputeWinProbabilitiesExcludesFarOffContenders(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	contenders := []WinProbContender{
		{EntryID: "leader", ScoreToPar: -15, CompletedHoles: 72, IsHuman: false, GolferOverall: 95},
		{EntryID: "far-off", ScoreToPar: 20, CompletedHoles: 72, IsHuman: false, GolferOverall: 60},
	}
	probs := ComputeWinProbabilities(rng, contenders)

	if _, ok := probs["far-off"]; ok {
		t.Errorf("a contender 35 strokes back with 0 holes remaining should be pruned entirely")
	}
	if probs["leader"] < 0.99 {
		t.Errorf("sole remaining contender should win virtually every trial, got %v", probs["leader"])
	}
}

func TestComputeWinProbabilitiesEmptyInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	probs := ComputeWinProbabilities(rng, nil)
	if len(probs) != 0 {
		t.Errorf("expected no probabilities for an empty contender list, got %v", probs)
	}
}
