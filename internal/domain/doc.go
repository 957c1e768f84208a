// Package domain defines the core business entities of the forum
// (users, topics, questions, answers, votes) and their validation rules.
package domain
