package domain

// Context is the publishing policy, built by the caller from configuration
// and never changed by the pipeline. Empty fields disable their rule.
type Context struct {
	AllowedChatTypes []string `json:"allowed_chat_types"`
	RequiredHashtag  string   `json:"required_hashtag,omitempty"`
	HashtagAllowlist []string `json:"hashtag_allowlist,omitempty"`
	HashtagBlocklist []string `json:"hashtag_blocklist,omitempty"`
}

// Rejection names the rule that filtered a message out
type Rejection string

const (
	RejectionNone                   Rejection = ""
	RejectionNoMessage              Rejection = "no_message"
	RejectionChatType               Rejection = "chat_type_not_allowed"
	RejectionNoContent              Rejection = "no_content"
	RejectionMissingRequiredHashtag Rejection = "missing_required_hashtag"
	RejectionNoAllowedHashtag       Rejection = "no_allowed_hashtag"
	RejectionBlockedHashtag         Rejection = "blocked_hashtag"
)

// Input is what the policy looks at for one message
type Input struct {
	ChatType   string
	Text       string
	Hashtags   []string
	MediaCount int
}

// Verdict is the outcome of evaluating a policy
type Verdict struct {
	Accepted bool
	Reason   Rejection
	// Matched holds the hashtags that triggered the rejection, if any.
	Matched []string
}
