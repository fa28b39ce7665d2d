// Package chat routes a free-text message to a canned reply. Routing is a
// first-match-wins walk over an ordered rule table.
package chat

import (
	"regexp"
	"strings"

	"career-guide/internal/pkg/randsrc"
)

const TopicDefault = "default"

var (
	greetingPattern = regexp.MustCompile(`^(hi|hello|hey|greetings|good morning|good afternoon|good evening)$`)
	aiWordPattern   = regexp.MustCompile(`\bai\b`)
)

type matcher func(lower string) bool

// rule replies with one literal, a random pick when it has several, or the
// template with the original message substituted when templated is set.
type rule struct {
	topic     string
	match     matcher
	replies   []string
	templated bool
}

func contains(keywords ...string) matcher {
	return func(lower string) bool {
		for _, k := range keywords {
			if strings.Contains(lower, k) {
				return true
			}
		}
		return false
	}
}

func prefixed(prefixes ...string) matcher {
	return func(lower string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(lower, p) {
				return true
			}
		}
		return false
	}
}

func mentionsAI(lower string) bool {
	return strings.Contains(lower, "artificial intelligence") ||
		strings.Contains(lower, " ai ") ||
		aiWordPattern.MatchString(lower)
}

func one(s string) []string { return []string{s} }

// Order matters: keywords overlap ("python career" is a career question).
var rules = []rule{
	{topic: "greeting", match: greetingPattern.MatchString, replies: greetings},
	{topic: "career", match: contains("career", "job"), replies: one(careerReply)},
	{topic: "programming", match: contains("programming", "coding", "developer"), replies: one(programmingReply)},
	{topic: "python", match: contains("python"), replies: one(pythonReply)},
	{topic: "javascript", match: contains("javascript", "js"), replies: one(javascriptReply)},
	{topic: "ai", match: mentionsAI, replies: one(aiReply)},
	{topic: "machine-learning", match: contains("machine learning", "ml"), replies: one(machineLearningReply)},
	{topic: "deep-learning", match: contains("deep learning", "neural network"), replies: one(deepLearningReply)},
	{topic: "cnn", match: contains("cnn", "convolutional neural"), replies: one(cnnReply)},
	{topic: "alexnet", match: contains("alexnet"), replies: one(alexNetReply)},
	{topic: "vgg", match: contains("vgg"), replies: one(vggReply)},
	{topic: "resnet", match: contains("resnet"), replies: one(resNetReply)},
	{topic: "inception", match: contains("inception", "googlenet"), replies: one(inceptionReply)},
	{topic: "efficientnet", match: contains("efficientnet"), replies: one(efficientNetReply)},
	{topic: "cnn-comparison", match: contains("compare cnn", "cnn comparison"), replies: one(cnnComparisonReply)},
	{topic: "transfer-learning", match: contains("transfer learning"), replies: one(transferLearningReply)},
	{topic: "space", match: contains("space", "universe", "astronomy"), replies: one(spaceReply)},
	{topic: "physics", match: contains("physics"), replies: one(physicsReply)},
	{topic: "health", match: contains("health", "fitness", "exercise"), replies: one(healthReply)},
	{topic: "learning", match: contains("learn", "study", "education"), replies: one(learningReply)},
	{topic: "business", match: contains("business", "startup", "entrepreneur"), replies: one(businessReply)},
	{topic: "finance", match: contains("money", "finance", "invest"), replies: one(financeReply)},
	{topic: "skills", match: contains("skill", "resume", "cv"), replies: one(skillsReply)},
	{topic: "interview", match: contains("interview"), replies: one(interviewReply)},
	{topic: "math", match: contains("math", "mathematics", "calculus"), replies: one(mathReply)},
	{topic: "history", match: contains("history"), replies: one(historyReply)},
	{topic: "art", match: contains("art", "creative", "design"), replies: one(artReply)},
	{topic: "music", match: contains("music"), replies: one(musicReply)},
	{topic: "books", match: contains("book", "read"), replies: one(booksReply)},
	{topic: "climate", match: contains("weather", "climate"), replies: one(climateReply)},
	{topic: "food", match: contains("food", "cook", "recipe"), replies: one(foodReply)},
	{topic: "travel", match: contains("travel"), replies: one(travelReply)},
	{topic: "sports", match: contains("sport", "football", "cricket", "basketball"), replies: one(sportsReply)},
	{topic: "wellbeing", match: contains("motivation", "inspire", "mental health", "stress"), replies: one(wellbeingReply)},
	{topic: "time-management", match: contains("time management", "productivity"), replies: one(timeManagementReply)},
	{topic: "what-is", match: prefixed("what is ", "what are "), replies: one(whatIsTemplate), templated: true},
	{topic: "how-to", match: prefixed("how to ", "how do ", "how can "), replies: one(howToTemplate), templated: true},
	{topic: "thanks", match: contains("thank", "thanks"), replies: one(thanksReply)},
	{topic: "help", match: contains("help", "confused", "lost", "don't understand"), replies: one(helpReply)},
	{topic: "joke", match: contains("joke", "funny"), replies: jokes},
}

// Responder is safe for concurrent use when its random source is.
type Responder struct {
	rnd randsrc.Source
}

func NewResponder(rnd randsrc.Source) *Responder {
	if rnd == nil {
		rnd = randsrc.Default()
	}
	return &Responder{rnd: rnd}
}

func route(message string) (rule, bool) {
	lower := strings.ToLower(message)
	for _, r := range rules {
		if r.match(lower) {
			return r, true
		}
	}
	return rule{}, false
}

// Topic names the rule a message routes to. It never draws from the random source.
func Topic(message string) string {
	r, ok := route(message)
	if !ok {
		return TopicDefault
	}
	return r.topic
}

func (rs *Responder) Respond(message string) string {
	reply, _ := rs.RespondWithTopic(message)
	return reply
}

func (rs *Responder) RespondWithTopic(message string) (string, string) {
	r, ok := route(message)
	if !ok {
		return fill(defaultTemplate, message), TopicDefault
	}

	reply := r.replies[0]
	if len(r.replies) > 1 {
		reply = r.replies[rs.rnd.IntN(len(r.replies))]
	}
	if r.templated {
		reply = fill(reply, message)
	}
	return reply, r.topic
}

func fill(template, message string) string {
	return strings.Replace(template, messageToken, message, 1)
}

// Topics lists every routable topic in evaluation order, followed by the default.
func Topics() []string {
	out := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.topic)
	}
	return append(out, TopicDefault)
}
