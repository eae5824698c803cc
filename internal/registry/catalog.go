package registry

import "github.com/bloomafter40/platform/internal/entity"

// Static program catalogue. ModuleID is stamped by buildWeek so a component
// can move between weeks without editing every descriptor.

var week1Catalog = []Exercise{
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "welcome-video",
			Title:       "Welcome to BloomAfter40",
			Description: "Orientation: what the next six weeks look like.",
			Type:        entity.ComponentTypeVideo,
		},
		Phases: []Phase{
			{ID: "watch", Title: "Watch"},
			{ID: "complete", Title: "Done"},
		},
	},
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "symptom-assessment",
			Title:       "Symptom Baseline Assessment",
			Description: "Rate the frequency and intensity of your current symptoms.",
			Type:        entity.ComponentTypeInteractive,
		},
		Phases: []Phase{
			{ID: "assessment", Title: "Rate your symptoms", RequiredFields: []string{"hot_flashes", "sleep_quality", "mood_swings", "brain_fog"}},
			{ID: "review", Title: "Your baseline"},
			{ID: "complete", Title: "Done"},
		},
	},
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "box-breathing",
			Title:       "Box Breathing",
			Description: "A four-count breath cycle to settle the nervous system.",
			Type:        entity.ComponentTypeInteractive,
		},
		Phases: []Phase{
			{ID: "intro", Title: "How it works"},
			{ID: "practice", Title: "Practice", RequiredFields: []string{"rounds_completed"}},
			{ID: "review", Title: "How do you feel?", RequiredFields: []string{"calm_rating"}},
			{ID: "complete", Title: "Done"},
		},
	},
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "hormone-basics",
			Title:       "Hormones 101",
			Description: "What estrogen, progesterone and cortisol are doing right now.",
			Type:        entity.ComponentTypeText,
		},
		Phases: []Phase{
			{ID: "read", Title: "Read"},
			{ID: "complete", Title: "Done"},
		},
	},
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "evening-journal",
			Title:       "Evening Reflection",
			Description: "Three prompts to close the day.",
			Type:        entity.ComponentTypeInteractive,
		},
		Phases: []Phase{
			{ID: "practice", Title: "Write", RequiredFields: []string{"grateful_for", "noticed_today"}},
			{ID: "complete", Title: "Done"},
		},
	},
}

var week2Catalog = []Exercise{
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "sleep-assessment",
			Title:       "Sleep Quality Assessment",
			Description: "Score your sleep over the past two weeks.",
			Type:        entity.ComponentTypeInteractive,
		},
		Phases: []Phase{
			{ID: "assessment", Title: "Answer", RequiredFields: []string{"hours_average", "wake_count", "rested_rating"}},
			{ID: "review", Title: "Your sleep score"},
			{ID: "complete", Title: "Done"},
		},
	},
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "478-breathing",
			Title:       "4-7-8 Breathing",
			Description: "An extended-exhale pattern for falling asleep.",
			Type:        entity.ComponentTypeInteractive,
		},
		Phases: []Phase{
			{ID: "intro", Title: "How it works"},
			{ID: "practice", Title: "Practice", RequiredFields: []string{"rounds_completed"}},
			{ID: "review", Title: "How do you feel?", RequiredFields: []string{"calm_rating"}},
			{ID: "complete", Title: "Done"},
		},
	},
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "sleep-hygiene-checklist",
			Title:       "Sleep Environment Checklist",
			Description: "Audit your bedroom and wind-down routine.",
			Type:        entity.ComponentTypeInteractive,
		},
		Phases: []Phase{
			{ID: "practice", Title: "Check off", RequiredFields: []string{"checked_items"}},
			{ID: "review", Title: "Pick one change", RequiredFields: []string{"chosen_change"}},
			{ID: "complete", Title: "Done"},
		},
	},
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "wind-down-audio",
			Title:       "Wind-Down Body Scan",
			Description: "A twelve minute guided audio for bedtime.",
			Type:        entity.ComponentTypeAudio,
		},
		Phases: []Phase{
			{ID: "listen", Title: "Listen"},
			{ID: "complete", Title: "Done"},
		},
	},
}

var week3Catalog = []Exercise{
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "stress-assessment",
			Title:       "Stress Load Assessment",
			Description: "Where your stress is coming from and how it shows up.",
			Type:        entity.ComponentTypeInteractive,
		},
		Phases: []Phase{
			{ID: "assessment", Title: "Answer", RequiredFields: []string{"stress_rating", "main_sources"}},
			{ID: "review", Title: "Your stress map"},
			{ID: "complete", Title: "Done"},
		},
	},
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "thought-record",
			Title:       "Thought Record",
			Description: "A CBT worksheet: catch a thought, weigh it, reframe it.",
			Type:        entity.ComponentTypeInteractive,
		},
		Phases: []Phase{
			{ID: "intro", Title: "How it works"},
			{ID: "practice", Title: "Work one thought", RequiredFields: []string{"situation", "automatic_thought", "evidence_for", "evidence_against", "reframe"}},
			{ID: "review", Title: "Before and after", RequiredFields: []string{"belief_after"}},
			{ID: "complete", Title: "Done"},
		},
	},
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "cognitive-reframing",
			Title:       "Reframing Practice",
			Description: "Turn three common midlife thoughts into workable ones.",
			Type:        entity.ComponentTypeInteractive,
		},
		Phases: []Phase{
			{ID: "technique-selection", Title: "Pick a thought", RequiredFields: []string{"chosen_thought"}},
			{ID: "practice", Title: "Reframe it", RequiredFields: []string{"reframe"}},
			{ID: "complete", Title: "Done"},
		},
	},
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "body-scan-audio",
			Title:       "Midday Body Scan",
			Description: "Eight minutes to reset between obligations.",
			Type:        entity.ComponentTypeAudio,
		},
		Phases: []Phase{
			{ID: "listen", Title: "Listen"},
			{ID: "complete", Title: "Done"},
		},
	},
}

var week4Catalog = []Exercise{
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "energy-assessment",
			Title:       "Energy Pattern Assessment",
			Description: "Map your energy across a typical day.",
			Type:        entity.ComponentTypeInteractive,
		},
		Phases: []Phase{
			{ID: "assessment", Title: "Answer", RequiredFields: []string{"morning_energy", "afternoon_energy", "evening_energy"}},
			{ID: "review", Title: "Your energy curve"},
			{ID: "complete", Title: "Done"},
		},
	},
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "movement-planner",
			Title:       "Weekly Movement Planner",
			Description: "Place three movement blocks where your energy supports them.",
			Type:        entity.ComponentTypeInteractive,
		},
		Phases: []Phase{
			{ID: "practice", Title: "Plan", RequiredFields: []string{"planned_blocks"}},
			{ID: "complete", Title: "Done"},
		},
	},
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "habit-builder",
			Title:       "Tiny Habit Builder",
			Description: "Anchor one two-minute habit to an existing routine.",
			Type:        entity.ComponentTypeInteractive,
		},
		Phases: []Phase{
			{ID: "technique-selection", Title: "Pick a habit", RequiredFields: []string{"habit_name"}},
			{ID: "practice", Title: "Anchor it", RequiredFields: []string{"anchor_routine"}},
			{ID: "complete", Title: "Done"},
		},
	},
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "strength-basics-video",
			Title:       "Strength After 40",
			Description: "Why resistance work matters more now, and how to start.",
			Type:        entity.ComponentTypeVideo,
		},
		Phases: []Phase{
			{ID: "watch", Title: "Watch"},
			{ID: "complete", Title: "Done"},
		},
	},
}

// week5Catalog also serves week6 (integration spans both weeks).
var week5Catalog = []Exercise{
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "progress-review",
			Title:       "Six Week Progress Review",
			Description: "Re-take your baseline assessment and compare.",
			Type:        entity.ComponentTypeInteractive,
		},
		Phases: []Phase{
			{ID: "assessment", Title: "Re-rate your symptoms", RequiredFields: []string{"hot_flashes", "sleep_quality", "mood_swings", "brain_fog"}},
			{ID: "review", Title: "Then vs now"},
			{ID: "complete", Title: "Done"},
		},
	},
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "values-clarification",
			Title:       "Values Clarification",
			Description: "Choose the three values that anchor your next season.",
			Type:        entity.ComponentTypeInteractive,
		},
		Phases: []Phase{
			{ID: "technique-selection", Title: "Choose values", RequiredFields: []string{"chosen_values"}},
			{ID: "practice", Title: "Make them concrete", RequiredFields: []string{"value_actions"}},
			{ID: "complete", Title: "Done"},
		},
	},
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "future-self-letter",
			Title:       "Letter to Your Future Self",
			Description: "Write to yourself one year from today.",
			Type:        entity.ComponentTypeInteractive,
		},
		Phases: []Phase{
			{ID: "practice", Title: "Write", RequiredFields: []string{"letter"}},
			{ID: "complete", Title: "Done"},
		},
	},
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "maintenance-plan",
			Title:       "Maintenance Plan",
			Description: "Keep the two practices that moved the needle most.",
			Type:        entity.ComponentTypeInteractive,
		},
		Phases: []Phase{
			{ID: "practice", Title: "Plan", RequiredFields: []string{"kept_practices", "weekly_checkin_day"}},
			{ID: "complete", Title: "Done"},
		},
	},
	{
		Descriptor: entity.ComponentDescriptor{
			ID:          "graduation-video",
			Title:       "You Made It",
			Description: "Closing session and what comes next.",
			Type:        entity.ComponentTypeVideo,
		},
		Phases: []Phase{
			{ID: "watch", Title: "Watch"},
			{ID: "complete", Title: "Done"},
		},
	},
}
