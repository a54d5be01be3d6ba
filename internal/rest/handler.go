package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/nasafacts/community-service/internal/config"
	api "github.com/nasafacts/community-service/internal/generated"
	"github.com/nasafacts/community-service/internal/model"
	"github.com/nasafacts/community-service/internal/profile"
)

type Handler struct {
	messages         MessageStore
	feed             ThreadOpener
	topics           TopicCatalog
	wishlist         Wishlist
	profiles         Profiles
	centrifugeClient CentrifugeClient
	validator        Validator
	jwtGenerator     JWTGenerator
	stream           config.Realtime
}

func New(
	messages MessageStore,
	feed ThreadOpener,
	topics TopicCatalog,
	wishlist Wishlist,
	profiles Profiles,
	centrifugeClient CentrifugeClient,
	validator Validator,
	jwtGenerator JWTGenerator,
	stream config.Realtime,
) *Handler {
	return &Handler{
		messages:         messages,
		feed:             feed,
		topics:           topics,
		wishlist:         wishlist,
		profiles:         profiles,
		centrifugeClient: centrifugeClient,
		validator:        validator,
		jwtGenerator:     jwtGenerator,
		stream:           stream,
	}
}

func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request, params api.ListTopicsParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListTopics")

	topics, err := h.topics.List(r.Context(), params.Limit)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list topics: %v", err))
		h.writeDomainError(w, err)
		return
	}

	response := api.ListTopicsResponse{
		Topics: make([]api.Topic, 0, len(topics)),
	}
	for _, topic := range topics {
		response.Topics = append(response.Topics, toAPITopic(topic))
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetTodayTopic(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetTodayTopic")

	topic, err := h.topics.Today(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get today's topic: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, api.GetTopicResponse{Topic: toAPITopic(*topic)}, http.StatusOK)
}

func (h *Handler) GetTopic(w http.ResponseWriter, r *http.Request, topicId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetTopic")

	topicID, err := parseID(topicId, "topic_id")
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	topic, err := h.topics.Get(r.Context(), topicID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get topic %s: %v", topicID, err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, api.GetTopicResponse{Topic: toAPITopic(*topic)}, http.StatusOK)
}

func (h *Handler) GetTopicMessages(w http.ResponseWriter, r *http.Request, topicId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetTopicMessages")

	topicID, err := parseID(topicId, "topic_id")
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	messages, err := h.messages.ListMessages(r.Context(), topicID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeDomainError(w, err)
		return
	}

	response := api.GetTopicMessagesResponse{
		Messages: make([]api.Message, 0, len(messages)),
	}
	for _, msg := range messages {
		response.Messages = append(response.Messages, toAPIMessage(msg))
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request, topicId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	authorID, ok := userIDFromRequest(r)
	if !ok {
		h.writeDomainError(w, model.ErrAuth)
		return
	}

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	topicID, err := parseID(topicId, "topic_id")
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeDomainError(w, err)
		return
	}

	message, err := h.messages.PostMessage(r.Context(), topicID, authorID, req.Content)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		h.writeDomainError(w, err)
		return
	}

	if err := h.centrifugeClient.PublishMessage(r.Context(), *message); err != nil {
		logger.Error(fmt.Sprintf("failed to publish message to topic channel: %v", err))
	}

	h.writeJSON(w, api.SendMessageResponse{Message: toAPIMessage(*message)}, http.StatusOK)
}

func (h *Handler) GetConnectAccessToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectAccessToken")

	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeDomainError(w, model.ErrAuth)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userID.String())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, "failed to generate access token", http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated access token for user %s", userID))

	h.writeJSON(w, api.GetConnectAccessTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, http.StatusOK)
}

func (h *Handler) GetTopicSubscribeToken(w http.ResponseWriter, r *http.Request, topicId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetTopicSubscribeToken")

	topicID, err := parseID(topicId, "topic_id")
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeDomainError(w, model.ErrAuth)
		return
	}

	if _, err := h.topics.Get(r.Context(), topicID); err != nil {
		logger.Error(fmt.Sprintf("failed to check topic %s: %v", topicID, err))
		h.writeDomainError(w, err)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(userID.String(), topicID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, "failed to generate subscribe token", http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated subscribe token for user %s, topic %s", userID, topicID))

	h.writeJSON(w, api.GetTopicSubscribeTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Channel:   model.TopicChannel(topicID),
	}, http.StatusOK)
}

func (h *Handler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetWishlist")

	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeDomainError(w, model.ErrAuth)
		return
	}

	entries, err := h.wishlist.List(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list wishlist: %v", err))
		h.writeDomainError(w, err)
		return
	}

	response := api.GetWishlistResponse{
		Entries: make([]api.WishlistEntry, 0, len(entries)),
	}
	for _, entry := range entries {
		response.Entries = append(response.Entries, toAPIWishlistEntry(entry))
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) AddWishlistEntry(w http.ResponseWriter, r *http.Request, topicId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AddWishlistEntry")

	topicID, err := parseID(topicId, "topic_id")
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeDomainError(w, model.ErrAuth)
		return
	}

	entry, err := h.wishlist.Add(r.Context(), userID, topicID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to add wishlist entry: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, api.AddWishlistEntryResponse{Entry: toAPIWishlistEntry(*entry)}, http.StatusOK)
}

func (h *Handler) RemoveWishlistEntry(w http.ResponseWriter, r *http.Request, entryId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RemoveWishlistEntry")

	entryID, err := parseID(entryId, "entry_id")
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeDomainError(w, model.ErrAuth)
		return
	}

	if err := h.wishlist.Remove(r.Context(), userID, entryID); err != nil {
		logger.Error(fmt.Sprintf("failed to remove wishlist entry: %v", err))
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetProfile never fails the navigation: a missing or unreadable profile degrades to
// the identity provider's data.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetProfile")

	identity, ok := identityFromRequest(r)
	if !ok {
		h.writeDomainError(w, model.ErrAuth)
		return
	}

	p, err := h.profiles.Resolve(r.Context(), identity.UserID)
	if err != nil {
		logger.Warn(fmt.Sprintf("failed to resolve profile, using identity fallback: %v", err))
		p = nil
	}

	display := toAPIDisplay(profile.DisplayFor(p, identity))
	h.writeJSON(w, api.GetProfileResponse{
		Profile: toAPIProfilePtr(p),
		Display: &display,
	}, http.StatusOK)
}

func (h *Handler) GetUserProfile(w http.ResponseWriter, r *http.Request, userId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetUserProfile")

	userID, err := parseID(userId, "user_id")
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	p, err := h.profiles.Resolve(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to resolve profile %s: %v", userID, err))
		h.writeDomainError(w, err)
		return
	}

	response := api.GetProfileResponse{Profile: toAPIProfilePtr(p)}
	if p != nil {
		display := toAPIDisplay(profile.DisplayFor(p, model.Identity{}))
		response.Display = &display
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateProfile")

	var req api.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeDomainError(w, model.ErrAuth)
		return
	}

	update, err := h.validator.ValidateUpdateProfile(&req)
	if err != nil {
		logger.Error(fmt.Sprintf("profile validation failed: %v", err))
		h.writeDomainError(w, err)
		return
	}

	p, err := h.profiles.Update(r.Context(), userID, update)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update profile: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, api.UpdateProfileResponse{Profile: toAPIProfile(*p)}, http.StatusOK)
}

func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SignIn")

	identity, ok := identityFromRequest(r)
	if !ok {
		h.writeDomainError(w, model.ErrAuth)
		return
	}

	p, err := h.profiles.SignIn(r.Context(), identity)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to sign in user %s: %v", identity.UserID, err))
		h.writeDomainError(w, err)
		return
	}

	logger.Info(fmt.Sprintf("user %s signed in", identity.UserID))

	h.writeJSON(w, api.SignInResponse{Profile: toAPIProfile(*p)}, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func userIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	raw, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(raw)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}

func identityFromRequest(r *http.Request) (model.Identity, bool) {
	identity, ok := r.Context().Value(config.KeyIdentity).(model.Identity)
	if !ok || identity.UserID == uuid.Nil {
		return model.Identity{}, false
	}
	return identity, true
}

func parseID(raw, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s must be a UUID", model.ErrValidation, name)
	}
	return id, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeDomainError shows client errors as they are and hides the details of
// everything else.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	status := statusFor(err)

	message := err.Error()
	switch status {
	case http.StatusUnauthorized:
		message = model.ErrAuth.Error()
	case http.StatusInternalServerError:
		message = "internal error"
	}

	h.writeError(w, message, status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
