package practice

// ContentScope bounds which questions are eligible for one session: either
// a single subtopic, or a topic together with every subtopic under it.
// Exactly one of the two fields is set.
type ContentScope struct {
	TopicID    uint
	SubtopicID uint
}

// TopicScope targets a topic plus all of its subtopics
func TopicScope(topicID uint) ContentScope {
	return ContentScope{TopicID: topicID}
}

// SubtopicScope targets a single subtopic
func SubtopicScope(subtopicID uint) ContentScope {
	return ContentScope{SubtopicID: subtopicID}
}

func (s ContentScope) IsTopic() bool {
	return s.TopicID != 0 && s.SubtopicID == 0
}

func (s ContentScope) IsSubtopic() bool {
	return s.SubtopicID != 0 && s.TopicID == 0
}

// Valid reports whether exactly one scope form is set
func (s ContentScope) Valid() bool {
	return s.IsTopic() || s.IsSubtopic()
}
