package kafka

func NewPublisherWithWriter(w messageWriter) *Publisher {
	return newPublisher(w)
}
