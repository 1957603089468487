package store

import (
	"time"

	"github.com/lingua-launchpad/academy-server/internal/lesson"
	"github.com/lingua-launchpad/academy-server/internal/practice"
	"github.com/lingua-launchpad/academy-server/internal/progress"
	"github.com/lingua-launchpad/academy-server/internal/quiz"
)

// Seed initial dataset for a MemoryStore
type Seed struct {
	Languages []*progress.LanguageModel
	Lessons   []*lesson.LessonModel
	Quizzes   []*quiz.QuizModel
	Practices []*practice.PracticeModel
	Progress  *progress.UserProgressModel
}

func intp(v int) *int { return &v }

// DefaultSeed the development catalog: three languages, the Spanish
// beginner track plus French and German starters, and a progress aggregate
// with seeded streak data. Streak fields are externally maintained values,
// the store never recomputes them.
func DefaultSeed() *Seed {
	return &Seed{
		Languages: []*progress.LanguageModel{
			{ID: "spanish", Name: "Spanish", Level: "Beginner", Progress: 35, LessonsCompleted: 7, TotalLessons: 20},
			{ID: "french", Name: "French", Level: "Beginner", Progress: 15, LessonsCompleted: 3, TotalLessons: 20},
			{ID: "german", Name: "German", Level: "Beginner", Progress: 5, LessonsCompleted: 1, TotalLessons: 20},
		},
		Lessons:   seedLessons(),
		Quizzes:   seedQuizzes(),
		Practices: seedPractices(),
		Progress: &progress.UserProgressModel{
			CurrentStreak: 5,
			LongestStreak: 14,
			StreakDays: []time.Time{
				date(2024, time.April, 12),
				date(2024, time.April, 13),
				date(2024, time.April, 14),
				date(2024, time.April, 15),
				date(2024, time.April, 16),
			},
			TotalLessonsCompleted:  11,
			TotalQuizzesCompleted:  2,
			TotalPracticeCompleted: 8,
			RecentActivity: []progress.ActivityEntry{
				{Kind: progress.ActivityLesson, Title: "Weather Expressions", Date: date(2024, time.April, 16)},
				{Kind: progress.ActivityPractice, Title: "Spanish Greeting Practice", Date: date(2024, time.April, 15)},
				{Kind: progress.ActivityQuiz, Title: "Spanish Numbers Quiz", Date: date(2024, time.April, 14), Score: intp(90)},
				{Kind: progress.ActivityLesson, Title: "Spanish Family Vocabulary", Date: date(2024, time.April, 13)},
				{Kind: progress.ActivityPractice, Title: "Spanish Writing Exercise", Date: date(2024, time.April, 12)},
			},
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedLessons() []*lesson.LessonModel {
	return []*lesson.LessonModel{
		{
			ID:          "lesson-1",
			Title:       "Introduction to Spanish",
			Description: "Learn basic Spanish greetings and introductions",
			Language:    "spanish",
			Level:       "Beginner",
			Duration:    15,
			Completed:   true,
			Sections: []lesson.Section{
				&lesson.TextSection{
					ID:    "section-1",
					Title: "Basic Greetings",
					Content: "Spanish is one of the most widely spoken languages in the world. " +
						"In this lesson, we'll learn some basic greetings that you can use in everyday conversations.",
				},
				&lesson.VocabularySection{
					ID:    "section-2",
					Title: "Common Phrases",
					Items: []lesson.VocabularyItem{
						{Word: "Hola", Translation: "Hello", Example: "¡Hola! ¿Cómo estás?"},
						{Word: "Buenos días", Translation: "Good morning", Example: "Buenos días, ¿cómo amaneciste?"},
						{Word: "Buenas tardes", Translation: "Good afternoon", Example: "Buenas tardes, profesor."},
						{Word: "Buenas noches", Translation: "Good evening/night", Example: "Buenas noches, hasta mañana."},
					},
				},
				&lesson.ExampleSection{
					ID:    "section-3",
					Title: "Introducing Yourself",
					Examples: []string{
						"Me llamo María. (My name is María.)",
						"Soy de España. (I am from Spain.)",
						"Encantado de conocerte. (Nice to meet you.) - used by men",
						"Encantada de conocerte. (Nice to meet you.) - used by women",
					},
				},
				&lesson.GrammarSection{
					ID:    "section-4",
					Title: "Formal vs Informal",
					Content: "Spanish has formal and informal ways of addressing people. " +
						"Use 'tú' for friends, family, and children. Use 'usted' for strangers, elders, and in formal situations.",
				},
				&lesson.InteractiveSection{
					ID:      "section-5",
					Title:   "Practice",
					Prompt:  "How would you say 'Good morning' in Spanish?",
					Options: []string{"Buenas noches", "Buenos días", "Buenas tardes"},
				},
			},
		},
		{
			ID:          "lesson-2",
			Title:       "Basic Spanish Numbers",
			Description: "Learn to count from 1 to 20 in Spanish",
			Language:    "spanish",
			Level:       "Beginner",
			Duration:    20,
			Completed:   true,
			Sections: []lesson.Section{
				&lesson.TextSection{
					ID:    "section-1",
					Title: "Introduction to Numbers",
					Content: "Numbers are essential for everyday communication. " +
						"In this lesson, we'll learn the numbers 1-20 in Spanish.",
				},
			},
		},
		{
			ID:          "lesson-3",
			Title:       "Spanish Food Vocabulary",
			Description: "Essential food and restaurant vocabulary",
			Language:    "spanish",
			Level:       "Beginner",
			Duration:    25,
			Completed:   true,
		},
		{
			ID:          "lesson-4",
			Title:       "Spanish Present Tense",
			Description: "Learn regular verbs in the present tense",
			Language:    "spanish",
			Level:       "Beginner",
			Duration:    30,
			Completed:   true,
		},
		{
			ID:          "lesson-5",
			Title:       "Spanish Family Vocabulary",
			Description: "Learn vocabulary for family members",
			Language:    "spanish",
			Level:       "Beginner",
			Duration:    20,
			Completed:   true,
		},
		{
			ID:          "lesson-6",
			Title:       "Directions in Spanish",
			Description: "Learn how to ask for and give directions",
			Language:    "spanish",
			Level:       "Beginner",
			Duration:    25,
			Completed:   true,
		},
		{
			ID:          "lesson-7",
			Title:       "Weather Expressions",
			Description: "Talk about the weather in Spanish",
			Language:    "spanish",
			Level:       "Beginner",
			Duration:    20,
			Completed:   true,
		},
		{
			ID:          "lesson-8",
			Title:       "Spanish Irregular Verbs",
			Description: "Common irregular verbs in the present tense",
			Language:    "spanish",
			Level:       "Beginner",
			Duration:    30,
		},
		{
			ID:          "lesson-9",
			Title:       "Spanish Past Tense",
			Description: "Introduction to the past tense (preterite)",
			Language:    "spanish",
			Level:       "Beginner",
			Duration:    35,
			Locked:      true,
		},
		{
			ID:          "lesson-10",
			Title:       "Spanish Future Tense",
			Description: "How to express future actions",
			Language:    "spanish",
			Level:       "Beginner",
			Duration:    35,
			Locked:      true,
		},
		{
			ID:          "french-1",
			Title:       "Introduction to French",
			Description: "Learn basic French greetings and introductions",
			Language:    "french",
			Level:       "Beginner",
			Duration:    15,
			Completed:   true,
		},
		{
			ID:          "french-2",
			Title:       "French Numbers",
			Description: "Learn to count in French",
			Language:    "french",
			Level:       "Beginner",
			Duration:    20,
			Completed:   true,
		},
		{
			ID:          "french-3",
			Title:       "French Articles",
			Description: "Understanding definite and indefinite articles",
			Language:    "french",
			Level:       "Beginner",
			Duration:    25,
			Completed:   true,
		},
		{
			ID:          "german-1",
			Title:       "Introduction to German",
			Description: "Learn basic German greetings and introductions",
			Language:    "german",
			Level:       "Beginner",
			Duration:    15,
			Completed:   true,
		},
	}
}

func seedQuizzes() []*quiz.QuizModel {
	return []*quiz.QuizModel{
		{
			ID:            "quiz-1",
			Title:         "Spanish Greetings Quiz",
			Description:   "Test your knowledge of Spanish greetings and introductions",
			Language:      "spanish",
			Level:         "Beginner",
			QuestionCount: 5,
			Difficulty:    quiz.DifficultyEasy,
			Completed:     true,
			Score:         intp(80),
			Questions: []quiz.QuestionModel{
				{
					ID:            "q1",
					Text:          "How do you say 'Hello' in Spanish?",
					Options:       []string{"Adiós", "Hola", "Gracias", "Por favor"},
					CorrectOption: 1,
					Explanation:   "'Hola' is the Spanish word for 'Hello'.",
				},
				{
					ID:            "q2",
					Text:          "Which phrase means 'Good afternoon' in Spanish?",
					Options:       []string{"Buenos días", "Buenas noches", "Buenas tardes", "Buen provecho"},
					CorrectOption: 2,
					Explanation:   "'Buenas tardes' is used as a greeting in the afternoon.",
				},
				{
					ID:            "q3",
					Text:          "How would you say 'My name is John' in Spanish?",
					Options:       []string{"Yo soy John", "El nombre es John", "Me llamo John", "Te llamas John"},
					CorrectOption: 2,
					Explanation:   "'Me llamo...' is the common way to introduce yourself in Spanish.",
				},
				{
					ID:            "q4",
					Text:          "Which is the correct way to say 'How are you?' in Spanish?",
					Options:       []string{"¿Dónde estás?", "¿Quién eres?", "¿Qué tal?", "¿Cómo estás?"},
					CorrectOption: 3,
					Explanation:   "'¿Cómo estás?' is the direct translation of 'How are you?'",
				},
				{
					ID:            "q5",
					Text:          "What does 'Encantado de conocerte' mean in English?",
					Options:       []string{"See you later", "Nice to meet you", "I don't understand", "How's your day?"},
					CorrectOption: 1,
					Explanation:   "'Encantado de conocerte' means 'Nice to meet you' in English.",
				},
			},
		},
		{
			ID:            "quiz-2",
			Title:         "Spanish Numbers Quiz",
			Description:   "Test your knowledge of Spanish numbers 1-20",
			Language:      "spanish",
			Level:         "Beginner",
			QuestionCount: 5,
			Difficulty:    quiz.DifficultyEasy,
		},
		{
			ID:            "quiz-3",
			Title:         "Spanish Food Vocabulary Quiz",
			Description:   "Test your knowledge of Spanish food vocabulary",
			Language:      "spanish",
			Level:         "Beginner",
			QuestionCount: 10,
			Difficulty:    quiz.DifficultyMedium,
		},
		{
			ID:            "quiz-4",
			Title:         "Spanish Present Tense Quiz",
			Description:   "Test your knowledge of regular verbs in present tense",
			Language:      "spanish",
			Level:         "Beginner",
			QuestionCount: 10,
			Difficulty:    quiz.DifficultyMedium,
			Locked:        true,
		},
		{
			ID:            "french-quiz-1",
			Title:         "French Greetings Quiz",
			Description:   "Test your knowledge of French greetings",
			Language:      "french",
			Level:         "Beginner",
			QuestionCount: 5,
			Difficulty:    quiz.DifficultyEasy,
			Completed:     true,
			Score:         intp(100),
		},
		{
			ID:            "french-quiz-2",
			Title:         "French Numbers Quiz",
			Description:   "Test your knowledge of French numbers",
			Language:      "french",
			Level:         "Beginner",
			QuestionCount: 5,
			Difficulty:    quiz.DifficultyEasy,
		},
		{
			ID:            "german-quiz-1",
			Title:         "German Greetings Quiz",
			Description:   "Test your knowledge of German greetings",
			Language:      "german",
			Level:         "Beginner",
			QuestionCount: 5,
			Difficulty:    quiz.DifficultyEasy,
		},
	}
}

func seedPractices() []*practice.PracticeModel {
	return []*practice.PracticeModel{
		{
			ID:            "practice-1",
			Title:         "Spanish Greeting Practice",
			Description:   "Practice using Spanish greetings in different situations",
			Language:      "spanish",
			Type:          practice.PracticeSpeaking,
			EstimatedTime: 10,
			Instructions:  "Practice saying these common Spanish greetings out loud. Focus on pronunciation.",
			Exercises: []string{
				"Hola, ¿cómo estás? (Hello, how are you?)",
				"Buenos días, ¿qué tal? (Good morning, how's it going?)",
				"Buenas tardes, encantado de conocerte. (Good afternoon, nice to meet you.)",
				"Buenas noches, hasta mañana. (Good night, see you tomorrow.)",
			},
		},
		{
			ID:            "practice-2",
			Title:         "Spanish Numbers Drill",
			Description:   "Practice counting from 1-20 in Spanish",
			Language:      "spanish",
			Type:          practice.PracticeVocabulary,
			EstimatedTime: 5,
			Instructions:  "Practice saying these numbers in Spanish. Try to memorize them.",
			Exercises:     []string{"uno (1)", "dos (2)", "tres (3)", "cuatro (4)", "cinco (5)"},
		},
		{
			ID:            "practice-3",
			Title:         "Spanish Conversation Practice",
			Description:   "Practice a basic Spanish conversation with common phrases",
			Language:      "spanish",
			Type:          practice.PracticeSpeaking,
			EstimatedTime: 15,
			Instructions:  "Practice this conversation, alternating between both roles.",
		},
		{
			ID:            "practice-4",
			Title:         "Spanish Listening Exercise",
			Description:   "Listen to native speakers and improve your comprehension",
			Language:      "spanish",
			Type:          practice.PracticeListening,
			EstimatedTime: 10,
			Instructions:  "Listen to the audio clips and answer the questions.",
		},
		{
			ID:            "practice-5",
			Title:         "Spanish Reading Practice",
			Description:   "Read short paragraphs and answer questions",
			Language:      "spanish",
			Type:          practice.PracticeReading,
			EstimatedTime: 15,
			Instructions:  "Read the following paragraphs and answer the questions.",
		},
		{
			ID:            "practice-6",
			Title:         "Spanish Writing Exercise",
			Description:   "Practice writing basic Spanish sentences",
			Language:      "spanish",
			Type:          practice.PracticeWriting,
			EstimatedTime: 20,
			Instructions:  "Write responses to the following prompts in Spanish.",
		},
		{
			ID:            "practice-7",
			Title:         "Spanish Grammar Drill",
			Description:   "Practice using articles and gender agreement",
			Language:      "spanish",
			Type:          practice.PracticeGrammar,
			EstimatedTime: 15,
			Instructions:  "Fill in the blanks with the correct article (el, la, los, las).",
		},
		{
			ID:            "french-practice-1",
			Title:         "French Pronunciation Practice",
			Description:   "Practice French vowel sounds",
			Language:      "french",
			Type:          practice.PracticeSpeaking,
			EstimatedTime: 10,
			Instructions:  "Practice saying these French words with proper pronunciation.",
		},
		{
			ID:            "german-practice-1",
			Title:         "German Article Practice",
			Description:   "Practice using German articles (der, die, das)",
			Language:      "german",
			Type:          practice.PracticeGrammar,
			EstimatedTime: 15,
			Instructions:  "Match the correct article with each noun.",
		},
	}
}
