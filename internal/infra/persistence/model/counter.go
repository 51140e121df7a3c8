package model

// Counter is the Firestore document shape of a sequential counter.
type Counter struct {
	CurrentNumber int `firestore:"currentNumber"`
}
