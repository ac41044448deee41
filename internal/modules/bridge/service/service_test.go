package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	filterDomain "github.com/reshetovitsme/tg-wp-bridge/internal/modules/filter/domain"
	journalRepo "github.com/reshetovitsme/tg-wp-bridge/internal/modules/journal/repository"
	mediaDomain "github.com/reshetovitsme/tg-wp-bridge/internal/modules/media/domain"
	mediaService "github.com/reshetovitsme/tg-wp-bridge/internal/modules/media/service"
	messageDomain "github.com/reshetovitsme/tg-wp-bridge/internal/modules/message/domain"
	postDomain "github.com/reshetovitsme/tg-wp-bridge/internal/modules/post/domain"
)

type stubSource struct {
	err error
}

func (s *stubSource) ResolveFetchURL(_ context.Context, fileID string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "https://api.telegram.org/file/botT/photos/" + fileID + ".jpg", nil
}

func (s *stubSource) Download(_ context.Context, _ string) ([]byte, error) {
	return []byte{0xff, 0xd8}, nil
}

type stubUploader struct{}

func (stubUploader) UploadMedia(_ context.Context, filename, _ string, _ []byte) (mediaDomain.Attachment, bool) {
	return mediaDomain.Attachment{ID: 77, SourceURL: "https://blog.example/uploads/" + filename}, true
}

type recordingPosts struct {
	drafts []*postDomain.Draft
	err    error
}

func (r *recordingPosts) CreatePost(_ context.Context, draft *postDomain.Draft) (*postDomain.Published, error) {
	r.drafts = append(r.drafts, draft)
	if r.err != nil {
		return nil, r.err
	}
	return &postDomain.Published{ID: int64(len(r.drafts)), Link: "https://blog.example/?p=1"}, nil
}

func ptr(s string) *string {
	return &s
}

func channelUpdate(msg messageDomain.Message) *messageDomain.Update {
	msg.Chat = messageDomain.Chat{ID: -100123, Type: "channel"}
	return &messageDomain.Update{UpdateID: 9, ChannelPost: &msg}
}

var channelPolicy = filterDomain.Context{AllowedChatTypes: []string{"channel"}}

func newService(source mediaService.Source, posts PostCreator, policy filterDomain.Context) *Service {
	return New(policy, mediaService.New(source, stubUploader{}), posts, journalRepo.NewMemoryStorage(5))
}

func TestHandleUpdateTextPost(t *testing.T) {
	posts := &recordingPosts{}
	svc := newService(&stubSource{}, posts, channelPolicy)

	err := svc.HandleUpdate(context.Background(), channelUpdate(messageDomain.Message{
		MessageID: 1,
		Text:      ptr("#blog Hello world\nsecond line\n\nNext"),
	}))
	require.NoError(t, err)

	require.Len(t, posts.drafts, 1)
	assert.Equal(t, "Hello world", posts.drafts[0].Title)
	assert.Equal(t, "<p>#blog Hello world<br>second line</p><p>Next</p>", posts.drafts[0].ContentHTML)
	assert.Empty(t, posts.drafts[0].AttachmentIDs)
}

func TestHandleUpdatePhotoOnly(t *testing.T) {
	posts := &recordingPosts{}
	svc := newService(&stubSource{}, posts, channelPolicy)

	outcome, err := svc.Process(context.Background(), channelUpdate(messageDomain.Message{
		MessageID: 2,
		Text:      ptr(""),
		Photo: []messageDomain.PhotoSize{
			{FileID: "thumb", Width: 90, Height: 90},
			{FileID: "full", Width: 1280, Height: 960},
		},
	}), channelPolicy)
	require.NoError(t, err)
	require.NotNil(t, outcome.Published)

	require.Len(t, posts.drafts, 1)
	draft := posts.drafts[0]
	assert.Equal(t, "(no title)", draft.Title)
	assert.True(t, strings.HasPrefix(draft.ContentHTML, "<figure"), draft.ContentHTML)
	assert.Contains(t, draft.ContentHTML, "https://blog.example/uploads/full.jpg")
	assert.Equal(t, []int64{77}, draft.AttachmentIDs)
}

func TestHandleUpdateMediaFailureStillPublishes(t *testing.T) {
	posts := &recordingPosts{}
	svc := newService(&stubSource{err: errors.New("telegram unreachable")}, posts, channelPolicy)

	outcome, err := svc.Process(context.Background(), channelUpdate(messageDomain.Message{
		MessageID: 3,
		Caption:   ptr("Look at this"),
		Photo:     []messageDomain.PhotoSize{{FileID: "p", Width: 10, Height: 10}},
	}), channelPolicy)
	require.NoError(t, err)

	require.Len(t, posts.drafts, 1)
	assert.Empty(t, posts.drafts[0].AttachmentIDs)
	assert.Equal(t, "<p>Look at this</p>", posts.drafts[0].ContentHTML)
	require.Len(t, outcome.Media.Results, 1)
	assert.Equal(t, mediaDomain.ItemStateFailed, outcome.Media.Results[0].State)
}

func TestHandleUpdateFiltered(t *testing.T) {
	policy := filterDomain.Context{
		AllowedChatTypes: []string{"channel"},
		HashtagAllowlist: []string{"#news"},
		HashtagBlocklist: []string{"#spam"},
	}

	tests := []struct {
		name   string
		update *messageDomain.Update
		want   filterDomain.Rejection
	}{
		{
			name:   "no message",
			update: &messageDomain.Update{UpdateID: 1},
			want:   filterDomain.RejectionNoMessage,
		},
		{
			name: "private chat",
			update: &messageDomain.Update{UpdateID: 2, Message: &messageDomain.Message{
				Chat: messageDomain.Chat{ID: 1, Type: "private"},
				Text: ptr("#news hi"),
			}},
			want: filterDomain.RejectionChatType,
		},
		{
			name:   "blocklist wins",
			update: channelUpdate(messageDomain.Message{Text: ptr("Story #news #spam")}),
			want:   filterDomain.RejectionBlockedHashtag,
		},
		{
			name:   "no allowed hashtag",
			update: channelUpdate(messageDomain.Message{Text: ptr("Story #misc")}),
			want:   filterDomain.RejectionNoAllowedHashtag,
		},
		{
			name:   "empty",
			update: channelUpdate(messageDomain.Message{Text: ptr("   ")}),
			want:   filterDomain.RejectionNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := &recordingPosts{}
			svc := newService(&stubSource{}, posts, policy)

			outcome, err := svc.Process(context.Background(), tt.update, policy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, outcome.Rejection)
			assert.Empty(t, posts.drafts)

			assert.NoError(t, svc.HandleUpdate(context.Background(), tt.update))
		})
	}
}

func TestHandleUpdatePostFailurePropagates(t *testing.T) {
	posts := &recordingPosts{err: errors.New("wordpress said 500")}
	svc := newService(&stubSource{}, posts, channelPolicy)

	err := svc.HandleUpdate(context.Background(), channelUpdate(messageDomain.Message{Text: ptr("hello")}))
	require.Error(t, err)
	assert.ErrorContains(t, err, "wordpress said 500")
}

func TestHandleUpdateRecordsJournal(t *testing.T) {
	posts := &recordingPosts{}
	journal := journalRepo.NewMemoryStorage(5)
	svc := New(channelPolicy, mediaService.New(&stubSource{}, stubUploader{}), posts, journal)

	require.NoError(t, svc.HandleUpdate(context.Background(), channelUpdate(messageDomain.Message{
		MessageID: 44,
		Text:      ptr("Journal me"),
	})))

	entries, err := journal.GetRecentEntries(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Journal me", entries[0].Title)
	assert.Equal(t, int64(44), entries[0].MessageID)
	assert.Equal(t, int64(-100123), entries[0].ChatID)
	assert.Equal(t, "https://blog.example/?p=1", entries[0].Link)
}

func TestHandleUpdateWithoutJournal(t *testing.T) {
	posts := &recordingPosts{}
	svc := New(channelPolicy, mediaService.New(&stubSource{}, stubUploader{}), posts, nil)

	assert.NoError(t, svc.HandleUpdate(context.Background(), channelUpdate(messageDomain.Message{Text: ptr("x")})))
	assert.Len(t, posts.drafts, 1)
}
