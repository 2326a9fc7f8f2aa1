package main

import "time"

// Base unit for every pulse and gap.
const baseUnit = 200 * time.Millisecond

// Played in order, then from the top again.
var messages = []string{
	"YYZ",
	"HELLO, WORLD?",
	"HI, IM KEVIN, AND THIS IS MY FIRST EMBEDDED PROJECT.",
	"SOS",
}

// Sound the buzzer alongside the LED when the board has one.
const useBuzzer = false
