package service

import "fmt"

// Character limits applied before prompting. These are hard cutoffs over
// runes; anything beyond the bound is silently omitted.
const (
	notesContentLimit = 4000
	quizContentLimit  = 4000
	chatContentLimit  = 3000
)

const notesPromptTemplate = `Based on the following lecture material, create comprehensive study notes.
Include:
- Key concepts and definitions
- Main topics covered
- Important points to remember
- Summary of each section

Lecture Material:
%s

Please format the notes in a clear, structured markdown format.`

const quizPromptTemplate = `Based on the following lecture material, create a quiz with %d multiple-choice questions.

For each question, provide:
1. The question text
2. Four answer options (A, B, C, D)
3. The correct answer
4. A brief explanation

Format the output as a JSON array with this structure:
[
    {
        "question": "Question text here?",
        "options": ["A) Option 1", "B) Option 2", "C) Option 3", "D) Option 4"],
        "correct_answer": "A",
        "explanation": "Explanation here"
    }
]

Lecture Material:
%s

Return only valid JSON without any markdown formatting or code blocks.`

const materialTutorContextTemplate = `You are an AI tutor helping a student understand the following lecture material:

%s

Based on this lecture material, answer the student's question in a helpful, educational manner.`

const genericTutorContext = `You are an AI tutor. Help the student with their question in a clear and educational manner.`

const chatPromptTemplate = `%s

Student's question: %s

Please provide a clear, helpful answer.`

func BuildNotesPrompt(content string) string {
	return fmt.Sprintf(notesPromptTemplate, TruncateRunes(content, notesContentLimit))
}

func BuildQuizPrompt(content string, numQuestions int) string {
	return fmt.Sprintf(quizPromptTemplate, numQuestions, TruncateRunes(content, quizContentLimit))
}

// BuildChatPrompt combines the tutor context with the student's question.
// When content is empty there is no material to ground on, so the generic
// tutor context is used instead.
func BuildChatPrompt(content, message string) string {
	context := genericTutorContext
	if content != "" {
		context = fmt.Sprintf(materialTutorContextTemplate, TruncateRunes(content, chatContentLimit))
	}
	return fmt.Sprintf(chatPromptTemplate, context, message)
}

// TruncateRunes cuts s down to at most limit characters. Counting runes,
// not bytes, so multibyte text is never split mid-character.
func TruncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
