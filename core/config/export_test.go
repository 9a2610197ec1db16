package config

// Reset exposes cache reset to black-box tests.
var Reset = reset
