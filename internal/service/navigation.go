package service

// Advance returns the index after index in a bank of n questions.
// It saturates at the last question.
func Advance(index, n int) int {
	return min(index+1, n-1)
}

// Retreat returns the index before index. It saturates at the first question.
func Retreat(index int) int {
	return max(index-1, 0)
}
