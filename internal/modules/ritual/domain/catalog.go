package domain

// DefaultExercises is the built-in catalog, two or more per category.
func DefaultExercises() []Exercise {
	return []Exercise{
		{
			ID:       "ont-witness-seat",
			Category: CategoryOntology,
			Title:    "The Witness Seat",
			Steps: []string{
				"Sit upright and let your eyes rest on one point in the room.",
				"Notice a thought arrive. Label it silently: *thinking*.",
				"Ask: who is noticing this thought? Do not answer, just look.",
				"Rest as the one who notices for ten slow breaths.",
			},
			CheckInPrompt: "What did it feel like to be the noticer rather than the thought?",
		},
		{
			ID:       "ont-already-here",
			Category: CategoryOntology,
			Title:    "Already Here",
			Steps: []string{
				"Name the outcome you want in one short sentence.",
				"Describe the ordinary Tuesday you live once it is real.",
				"Find one detail of that Tuesday that is already true today.",
			},
			CheckInPrompt: "Which part of the wish turned out to be already present?",
		},
		{
			ID:       "psy-reframe-ledger",
			Category: CategoryPsychology,
			Title:    "Reframe Ledger",
			Steps: []string{
				"Write down the story that has been bothering you most this week.",
				"Underline every sentence that is interpretation rather than fact.",
				"Rewrite one underlined sentence from the point of view of a kind friend.",
				"Read the new sentence out loud twice.",
			},
			CheckInPrompt: "How does the rewritten sentence sit in your body compared to the old one?",
		},
		{
			ID:       "psy-permission-slip",
			Category: CategoryPsychology,
			Title:    "Permission Slip",
			Steps: []string{
				"Complete the sentence: I am not yet allowed to...",
				"Sign a permission slip granting yourself exactly that, dated today.",
				"Choose one small act within the next hour that uses the permission.",
			},
			CheckInPrompt: "What permission did you grant, and what will you do with it?",
		},
		{
			ID:       "neu-box-breath",
			Category: CategoryNeuropsychology,
			Title:    "Box Breath Reset",
			Steps: []string{
				"Inhale through the nose for a count of four.",
				"Hold gently for four.",
				"Exhale through the mouth for four.",
				"Hold empty for four. Repeat the box six times.",
			},
			CheckInPrompt: "What changed in your heart rate or jaw after six boxes?",
		},
		{
			ID:       "neu-orienting",
			Category: CategoryNeuropsychology,
			Title:    "Orienting Scan",
			Steps: []string{
				"Slowly turn your head and let your eyes land on five objects.",
				"Name each object's color out loud.",
				"Find one thing in the room that feels safe and rest your gaze there.",
			},
			CheckInPrompt: "Where in your body did you feel the shift toward safety?",
		},
		{
			ID:       "phe-texture-walk",
			Category: CategoryPhenomenology,
			Title:    "Texture Walk",
			Steps: []string{
				"Touch three surfaces near you, one at a time.",
				"For each, describe temperature, grain and weight without naming the object.",
				"Notice which description surprised you.",
			},
			CheckInPrompt: "Which texture pulled you most fully into the present?",
		},
		{
			ID:       "phe-sound-map",
			Category: CategoryPhenomenology,
			Title:    "Sound Map",
			Steps: []string{
				"Close your eyes and find the furthest sound you can hear.",
				"Now find the closest sound, including your own breath.",
				"Hold both at once for one minute without choosing between them.",
			},
			CheckInPrompt: "What did the space between the far and near sounds feel like?",
		},
		{
			ID:       "cos-star-distance",
			Category: CategoryCosmology,
			Title:    "Star Distance",
			Steps: []string{
				"Picture the light of a star leaving it before you were born.",
				"Imagine it arriving in your eyes tonight, exactly on time.",
				"Name one thing in your life that is also already on its way.",
			},
			CheckInPrompt: "What is already travelling toward you?",
		},
		{
			ID:       "cos-pale-dot",
			Category: CategoryCosmology,
			Title:    "Pale Blue Dot",
			Steps: []string{
				"Zoom out in your mind from your room to your city to the planet.",
				"Keep going until Earth is a single pixel of light.",
				"From there, look back at today's biggest worry.",
				"Zoom back in slowly and land in your chair.",
			},
			CheckInPrompt: "How large did the worry look from the far side of the sky?",
		},
	}
}
