package handler

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pkordes/travel-tracker/internal/chat"
	"github.com/pkordes/travel-tracker/internal/domain"
	"github.com/pkordes/travel-tracker/internal/handler/gen"
)

var sessionNotFound = gen.NotFoundJSONResponse(notFoundBody("chat session not found"))

// ListChatLogs handles GET /chat/logs.
func (s *Server) ListChatLogs(ctx context.Context, _ gen.ListChatLogsRequestObject) (gen.ListChatLogsResponseObject, error) {
	logs, err := s.logs.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(gen.ListChatLogs200JSONResponse, len(logs))
	for i, l := range logs {
		out[i] = chatLogToResponse(l)
	}
	return out, nil
}

// CreateChatLog handles POST /chat/logs.
func (s *Server) CreateChatLog(ctx context.Context, req gen.CreateChatLogRequestObject) (gen.CreateChatLogResponseObject, error) {
	if req.Body == nil {
		return gen.CreateChatLog422JSONResponse{InvalidJSONResponse: gen.InvalidJSONResponse(requestBody("request body is required"))}, nil
	}

	log, err := s.logs.Save(ctx, req.Body.QueryName, deref(req.Body.QueryResponse))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateChatLog422JSONResponse{InvalidJSONResponse: gen.InvalidJSONResponse(validationBody(err))}, nil
		}
		return nil, err
	}
	return gen.CreateChatLog201JSONResponse(chatLogToResponse(log)), nil
}

// DeleteChatLog handles DELETE /chat/logs/{id}. A missing id is still 204.
func (s *Server) DeleteChatLog(ctx context.Context, req gen.DeleteChatLogRequestObject) (gen.DeleteChatLogResponseObject, error) {
	if err := s.logs.Remove(ctx, req.Id); err != nil {
		return nil, err
	}
	return gen.DeleteChatLog204Response{}, nil
}

// StartChatSession handles POST /chat/sessions.
func (s *Server) StartChatSession(ctx context.Context, _ gen.StartChatSessionRequestObject) (gen.StartChatSessionResponseObject, error) {
	sess, err := s.chat.Start(ctx)
	if err != nil {
		return nil, err
	}
	return gen.StartChatSession201JSONResponse(sessionToResponse(sess)), nil
}

// GetChatSession handles GET /chat/sessions/{id}.
func (s *Server) GetChatSession(ctx context.Context, req gen.GetChatSessionRequestObject) (gen.GetChatSessionResponseObject, error) {
	id, ok := sessionID(req.Id)
	if !ok {
		return gen.GetChatSession404JSONResponse{NotFoundJSONResponse: sessionNotFound}, nil
	}
	sess, err := s.chat.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetChatSession404JSONResponse{NotFoundJSONResponse: sessionNotFound}, nil
		}
		return nil, err
	}
	return gen.GetChatSession200JSONResponse(sessionToResponse(sess)), nil
}

// SendChatMessage handles POST /chat/sessions/{id}/messages.
// A failed assistant call is still a 200: the exchange carries failed=true and
// the apology text so the client keeps its history.
func (s *Server) SendChatMessage(ctx context.Context, req gen.SendChatMessageRequestObject) (gen.SendChatMessageResponseObject, error) {
	id, ok := sessionID(req.Id)
	if !ok {
		return gen.SendChatMessage404JSONResponse{NotFoundJSONResponse: sessionNotFound}, nil
	}
	if req.Body == nil {
		return gen.SendChatMessage422JSONResponse{InvalidJSONResponse: gen.InvalidJSONResponse(requestBody("request body is required"))}, nil
	}

	ex, err := s.chat.Send(ctx, id, req.Body.Prompt, deref(req.Body.Interest))
	switch {
	case err == nil:
		return gen.SendChatMessage200JSONResponse(exchangeToResponse(ex)), nil
	case errors.Is(err, domain.ErrValidation):
		return gen.SendChatMessage422JSONResponse{InvalidJSONResponse: gen.InvalidJSONResponse(validationBody(err))}, nil
	case errors.Is(err, domain.ErrNotFound):
		return gen.SendChatMessage404JSONResponse{NotFoundJSONResponse: sessionNotFound}, nil
	case errors.Is(err, domain.ErrGateway):
		s.logger.Error().Err(err).Str("op", "SendChatMessage").Msg("assistant call failed")
		return gen.SendChatMessage502JSONResponse{
			GatewayErrorJSONResponse: gen.GatewayErrorJSONResponse(errorBody("assistant_unavailable", "assistant unavailable")),
		}, nil
	default:
		return nil, err
	}
}

// ResetChatSession handles DELETE /chat/sessions/{id}/messages.
func (s *Server) ResetChatSession(ctx context.Context, req gen.ResetChatSessionRequestObject) (gen.ResetChatSessionResponseObject, error) {
	id, ok := sessionID(req.Id)
	if !ok {
		return gen.ResetChatSession404JSONResponse{NotFoundJSONResponse: sessionNotFound}, nil
	}
	sess, err := s.chat.Reset(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ResetChatSession404JSONResponse{NotFoundJSONResponse: sessionNotFound}, nil
		}
		return nil, err
	}
	return gen.ResetChatSession200JSONResponse(sessionToResponse(sess)), nil
}

// SaveChatExchange handles POST /chat/sessions/{id}/messages/{index}/save.
func (s *Server) SaveChatExchange(ctx context.Context, req gen.SaveChatExchangeRequestObject) (gen.SaveChatExchangeResponseObject, error) {
	id, ok := sessionID(req.Id)
	if !ok {
		return gen.SaveChatExchange404JSONResponse{NotFoundJSONResponse: sessionNotFound}, nil
	}
	log, err := s.chat.SaveExchange(ctx, id, req.Index)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.SaveChatExchange404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(notFoundBody("exchange not found"))}, nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.SaveChatExchange422JSONResponse{InvalidJSONResponse: gen.InvalidJSONResponse(validationBody(err))}, nil
		}
		return nil, err
	}
	return gen.SaveChatExchange201JSONResponse(chatLogToResponse(log)), nil
}

// --- mapping helpers --------------------------------------------------------

// sessionID canonicalises a session path id. A value that is not a UUID
// cannot name a session, so callers report it as not found.
func sessionID(raw gen.SessionID) (string, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

func chatLogToResponse(l domain.ChatLog) gen.ChatLog {
	return gen.ChatLog{LogId: l.ID, QueryName: l.Query, QueryResponse: l.Response}
}

func exchangeToResponse(ex chat.Exchange) gen.Exchange {
	return gen.Exchange{Prompt: ex.Prompt, Response: ex.Response, Pending: ex.Pending, Failed: ex.Failed}
}

func sessionToResponse(s chat.Session) gen.ChatSession {
	out := gen.ChatSession{
		Id:         s.ID,
		Interest:   s.Interest,
		Generation: s.Generation,
		Exchanges:  make([]gen.Exchange, len(s.Exchanges)),
	}
	for i, ex := range s.Exchanges {
		out.Exchanges[i] = exchangeToResponse(ex)
	}
	return out
}
