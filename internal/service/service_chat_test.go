package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/soul-scribe/internal/adapter"
	"github.com/MKhiriev/soul-scribe/internal/config"
	"github.com/MKhiriev/soul-scribe/internal/logger"
	"github.com/MKhiriev/soul-scribe/internal/mock"
	"github.com/MKhiriev/soul-scribe/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestChatSvc(ctrl *gomock.Controller, apiKey string) (ChatService, *mock.MockChatAdapter, *mock.MockContextAssembler) {
	chat := mock.NewMockChatAdapter(ctrl)
	assembler := mock.NewMockContextAssembler(ctrl)
	return NewChatService(chat, assembler, config.ChatAPI{APIKey: apiKey}, logger.Nop()), chat, assembler
}

func TestChatService_Chat_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, chat, assembler := newTestChatSvc(ctrl, "key")
	user := models.User{UserID: 1}

	assembler.EXPECT().Assemble(gomock.Any(), user).Return(models.ContextBlock{
		CopingMechanism: "deep breathing",
		MoodSummary:     "neutral, tired, angry, calm, sad",
	})
	chat.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, messages []models.ChatMessage) (string, error) {
			require.Len(t, messages, 2)
			assert.Equal(t, models.RoleSystem, messages[0].Role)
			assert.Contains(t, messages[0].Content, "deep breathing")
			assert.Contains(t, messages[0].Content, "neutral, tired, angry, calm, sad")
			assert.Equal(t, models.ChatMessage{Role: models.RoleUser, Content: "hello"}, messages[1])
			return "Hi there.", nil
		},
	)

	reply, err := svc.Chat(context.Background(), user, "hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi there.", reply)
}

func TestChatService_Chat_DegradedContextStillCallsUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, chat, assembler := newTestChatSvc(ctrl, "key")

	assembler.EXPECT().Assemble(gomock.Any(), gomock.Any()).Return(models.ContextBlock{
		CopingMechanism: CopingNotSpecified,
		MoodSummary:     MoodsNotRetrieved,
	})
	chat.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, messages []models.ChatMessage) (string, error) {
			assert.Contains(t, messages[0].Content, "Not specified")
			assert.Contains(t, messages[0].Content, "Could not retrieve")
			return "ok", nil
		},
	)

	_, err := svc.Chat(context.Background(), models.User{UserID: 1}, "hi")
	assert.NoError(t, err)
}

func TestChatService_Chat_EmptyMessageSkipsUpstream(t *testing.T) {
	for _, message := range []string{"", " ", "\n\t "} {
		t.Run(fmt.Sprintf("%q", message), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, chat, assembler := newTestChatSvc(ctrl, "key")
			assembler.EXPECT().Assemble(gomock.Any(), gomock.Any()).Times(0)
			chat.EXPECT().Complete(gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.Chat(context.Background(), models.User{UserID: 1}, message)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestChatService_Chat_MissingAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, chat, assembler := newTestChatSvc(ctrl, "")
	assembler.EXPECT().Assemble(gomock.Any(), gomock.Any()).Times(0)
	chat.EXPECT().Complete(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Chat(context.Background(), models.User{UserID: 1}, "hello")
	assert.ErrorIs(t, err, ErrServerMisconfigured)
}

func TestChatService_Chat_UpstreamFailuresPassThrough(t *testing.T) {
	for _, upstreamErr := range []error{
		fmt.Errorf("%w: status 500", adapter.ErrUpstreamStatus),
		fmt.Errorf("%w: context deadline exceeded", adapter.ErrUpstreamUnavailable),
		adapter.ErrMalformedUpstreamResponse,
	} {
		t.Run(adapter.ErrorKind(upstreamErr), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, chat, assembler := newTestChatSvc(ctrl, "key")
			assembler.EXPECT().Assemble(gomock.Any(), gomock.Any()).Return(models.ContextBlock{})
			chat.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", upstreamErr)

			reply, err := svc.Chat(context.Background(), models.User{UserID: 1}, "hello")
			assert.Empty(t, reply)
			assert.ErrorIs(t, err, upstreamErr)
			assert.NotErrorIs(t, err, ErrInvalidDataProvided)
			assert.NotErrorIs(t, err, ErrServerMisconfigured)
		})
	}
}
