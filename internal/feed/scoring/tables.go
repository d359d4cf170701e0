// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package scoring

// Curated lookup tables for pet compatibility scoring. All keys are
// lowercase; pairwise tables are checked in both orderings at lookup time,
// so each pair appears only once here.

// breedPair keys the undirected breed compatibility table.
type breedPair struct {
	a, b string
}

// breedCompatibility maps curated breed pairs to a compatibility score.
var breedCompatibility = map[breedPair]int{
	{"golden retriever", "labrador retriever"}: 95,
	{"golden retriever", "golden retriever"}:   90,
	{"golden retriever", "poodle"}:             85,
	{"golden retriever", "border collie"}:      85,
	{"labrador retriever", "labrador retriever"}: 90,
	{"labrador retriever", "beagle"}:             85,
	{"labrador retriever", "poodle"}:             80,
	{"border collie", "australian shepherd"}:     90,
	{"border collie", "border collie"}:           85,
	{"beagle", "beagle"}:                         85,
	{"beagle", "basset hound"}:                   80,
	{"poodle", "poodle"}:                         85,
	{"poodle", "bichon frise"}:                   85,
	{"french bulldog", "pug"}:                    85,
	{"french bulldog", "french bulldog"}:         80,
	{"pug", "pug"}:                               80,
	{"german shepherd", "belgian malinois"}:      85,
	{"german shepherd", "german shepherd"}:       80,
	{"german shepherd", "chihuahua"}:             40,
	{"siberian husky", "alaskan malamute"}:       90,
	{"siberian husky", "siberian husky"}:         85,
	{"siberian husky", "chihuahua"}:              35,
	{"chihuahua", "chihuahua"}:                   75,
	{"maine coon", "ragdoll"}:                    90,
	{"maine coon", "maine coon"}:                 85,
	{"siamese", "siamese"}:                       80,
	{"siamese", "persian"}:                       70,
	{"persian", "ragdoll"}:                       85,
}

// breedSpecies maps a breed to its species bucket. Breeds absent from the
// table fall into the "other" bucket.
var breedSpecies = map[string]string{
	"golden retriever":    "dog",
	"labrador retriever":  "dog",
	"border collie":       "dog",
	"australian shepherd": "dog",
	"beagle":              "dog",
	"basset hound":        "dog",
	"poodle":              "dog",
	"bichon frise":        "dog",
	"french bulldog":      "dog",
	"pug":                 "dog",
	"german shepherd":     "dog",
	"belgian malinois":    "dog",
	"siberian husky":      "dog",
	"alaskan malamute":    "dog",
	"chihuahua":           "dog",
	"maine coon":          "cat",
	"ragdoll":             "cat",
	"siamese":             "cat",
	"persian":             "cat",
}

// sizeCompatible is the binary size adjacency table: each size is
// compatible with itself and its immediate neighbors.
var sizeCompatible = map[string][]string{
	"small":       {"small", "medium"},
	"medium":      {"small", "medium", "large"},
	"large":       {"medium", "large", "extra_large"},
	"extra_large": {"large", "extra_large"},
}

// traitPair keys the symmetric personality trait table.
type traitPair struct {
	a, b string
}

// traitCompatibility maps curated trait pairs to a compatibility score.
// Unlisted pairs default to 50.
var traitCompatibility = map[traitPair]int{
	{"playful", "playful"}:       95,
	{"playful", "energetic"}:     90,
	{"playful", "social"}:        85,
	{"playful", "calm"}:          60,
	{"playful", "shy"}:           45,
	{"energetic", "energetic"}:   90,
	{"energetic", "calm"}:        50,
	{"energetic", "lazy"}:        30,
	{"calm", "calm"}:             90,
	{"calm", "gentle"}:           90,
	{"calm", "shy"}:              75,
	{"gentle", "shy"}:            80,
	{"gentle", "gentle"}:         90,
	{"social", "social"}:         95,
	{"social", "friendly"}:       90,
	{"social", "shy"}:            50,
	{"friendly", "friendly"}:     90,
	{"independent", "calm"}:      70,
	{"independent", "social"}:    55,
	{"protective", "protective"}: 60,
	{"protective", "gentle"}:     65,
	{"aggressive", "aggressive"}: 20,
	{"aggressive", "shy"}:        25,
	{"aggressive", "gentle"}:     30,
}

// activityCompatible maps an activity to activities considered compatible
// with it (weighted 0.7 against an exact match).
var activityCompatible = map[string][]string{
	"fetch":        {"frisbee", "ball games"},
	"frisbee":      {"fetch", "agility"},
	"hiking":       {"running", "walking"},
	"running":      {"hiking", "agility"},
	"walking":      {"hiking", "sniffing"},
	"swimming":     {"dock diving", "fetch"},
	"dock diving":  {"swimming"},
	"agility":      {"frisbee", "running", "obedience"},
	"obedience":    {"agility", "tricks"},
	"tricks":       {"obedience"},
	"dog park":     {"socializing", "fetch"},
	"socializing":  {"dog park", "playdates"},
	"playdates":    {"socializing", "dog park"},
	"sniffing":     {"walking"},
	"cuddling":     {"napping"},
	"napping":      {"cuddling"},
	"laser chase":  {"string play"},
	"string play":  {"laser chase"},
	"climbing":     {"perching"},
	"perching":     {"climbing"},
	"ball games":   {"fetch"},
}

// healthConflict keys the curated conflicting-condition table.
type healthConflict struct {
	a, b string
}

// healthConflicts lists condition pairs considered unsafe to mix: the pair
// conflicts when one pet carries condition a and the other condition b
// (checked in both directions).
var healthConflicts = map[healthConflict]struct{}{
	{"contagious illness", "immunocompromised"}: {},
	{"contagious illness", "senior"}:            {},
	{"kennel cough", "immunocompromised"}:       {},
	{"kennel cough", "respiratory condition"}:   {},
	{"fleas", "flea allergy"}:                   {},
	{"aggression history", "anxiety"}:           {},
	{"aggression history", "recovering injury"}: {},
}

// seasonalMultipliers maps season x content type to an engagement
// multiplier. Unlisted combinations default to 1.0.
var seasonalMultipliers = map[string]map[string]float64{
	"spring": {
		"photo":        1.1,
		"video":        1.0,
		"story":        1.0,
		"article":      0.95,
		"event":        1.2,
		"playdate":     1.25,
		"adoption":     1.15,
		"health_tip":   1.05,
		"training_tip": 1.1,
	},
	"summer": {
		"photo":        1.15,
		"video":        1.1,
		"story":        1.05,
		"article":      0.9,
		"event":        1.25,
		"playdate":     1.3,
		"adoption":     1.1,
		"health_tip":   1.1,
		"training_tip": 0.95,
	},
	"autumn": {
		"photo":        1.05,
		"video":        1.05,
		"story":        1.0,
		"article":      1.1,
		"event":        1.0,
		"playdate":     1.0,
		"adoption":     1.05,
		"health_tip":   1.0,
		"training_tip": 1.15,
	},
	"winter": {
		"photo":        1.0,
		"video":        1.15,
		"story":        1.1,
		"article":      1.2,
		"event":        0.85,
		"playdate":     0.8,
		"adoption":     1.0,
		"health_tip":   1.15,
		"training_tip": 1.05,
	},
}

// topicBaseWeights assigns per-topic base weights used when folding
// trending scores into the engagement prediction. Unlisted topics default
// to 0.5.
var topicBaseWeights = map[string]float64{
	"adoption":  0.9,
	"rescue":    0.9,
	"training":  0.8,
	"health":    0.8,
	"nutrition": 0.7,
	"grooming":  0.6,
	"playdates": 0.7,
	"events":    0.6,
	"products":  0.4,
}
