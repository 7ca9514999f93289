// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package weather

// YearExtremes holds the extreme readings of a year. Each field is the whole
// reading so the renderer can show the day it occurred on.
type YearExtremes struct {
	Highest         Reading // max MaxTemp
	Lowest          Reading // min MinTemp
	FastestWind     Reading // max MaxWindSpeed
	SlowestMeanWind Reading // min MeanWindSpeed
}

// MonthAverages holds a month's rounded average high and low temperature.
type MonthAverages struct {
	HighestAverage int
	LowestAverage  int
}
