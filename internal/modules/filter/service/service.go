package service

import (
	"strings"

	"github.com/reshetovitsme/tg-wp-bridge/internal/modules/filter/domain"
	messageDomain "github.com/reshetovitsme/tg-wp-bridge/internal/modules/message/domain"
	"github.com/reshetovitsme/tg-wp-bridge/internal/modules/message/parser"
	"github.com/samber/lo"
)

// ShouldPublish reports whether msg, carrying the already extracted
// text, passes the policy.
func ShouldPublish(msg *messageDomain.Message, text string, policy domain.Context) bool {
	return Evaluate(InputFor(msg, text), policy).Accepted
}

// InputFor gathers the policy input of a message.
func InputFor(msg *messageDomain.Message, text string) domain.Input {
	in := domain.Input{
		Text:     text,
		Hashtags: parser.ExtractHashtags(text),
	}
	if msg != nil {
		in.ChatType = msg.Chat.Type
		in.MediaCount = len(parser.CollectSupportedMedia(msg))
	}
	return in
}

// Evaluate applies the rules in a fixed order and stops at the first
// rejection: chat type, content presence, required hashtag, allowlist,
// blocklist. The blocklist runs last so it overrides an allowlist match.
func Evaluate(in domain.Input, policy domain.Context) domain.Verdict {
	if len(policy.AllowedChatTypes) > 0 && !lo.Contains(policy.AllowedChatTypes, in.ChatType) {
		return reject(domain.RejectionChatType)
	}

	if strings.TrimSpace(in.Text) == "" && in.MediaCount == 0 {
		return reject(domain.RejectionNoContent)
	}

	if policy.RequiredHashtag != "" && !lo.Contains(in.Hashtags, policy.RequiredHashtag) {
		return reject(domain.RejectionMissingRequiredHashtag)
	}

	if len(policy.HashtagAllowlist) > 0 && !lo.Some(in.Hashtags, policy.HashtagAllowlist) {
		return reject(domain.RejectionNoAllowedHashtag)
	}

	blocked := lo.Filter(in.Hashtags, func(tag string, _ int) bool {
		return lo.Contains(policy.HashtagBlocklist, tag)
	})
	if len(blocked) > 0 {
		verdict := reject(domain.RejectionBlockedHashtag)
		verdict.Matched = blocked
		return verdict
	}

	return domain.Verdict{Accepted: true}
}

func reject(reason domain.Rejection) domain.Verdict {
	return domain.Verdict{Reason: reason}
}
