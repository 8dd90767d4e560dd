package http

import (
	"github.com/gin-gonic/gin"

	"sentellent-console/pkg/response"
)

// Session godoc
// @Summary     Initialize the session
// @Description Returns the profile, the seeded conversation and the memory panel.
// @Tags        Console
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/v1/console/session [GET]
func (h *handler) Session(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Start(ctx, h.scope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Start: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// SendMessage godoc
// @Summary     Send one conversational turn
// @Description Appends the user turn, forwards it to the agent and returns both
//              resolved messages. Rejected with 409 while a send is in flight.
// @Tags        Console
// @Accept      json
// @Produce     json
// @Param       body body sendReq true "Turn content"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Empty submission"
// @Failure     409 {object} response.Resp "A send is already in flight"
// @Router      /api/v1/console/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Submit(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Submit: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSendResp(output))
}

// ListMessages godoc
// @Summary     List the conversation history
// @Tags        Console
// @Produce     json
// @Success     200 {object} messagesResp
// @Router      /api/v1/console/messages [GET]
func (h *handler) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	messages := h.uc.History(ctx)

	response.OK(c, h.newMessagesResp(messages))
}

// Attach godoc
// @Summary     Stage a file attachment
// @Description Encodes the uploaded file into the pending slot. The most recent
//              upload wins; the previous staged file is replaced.
// @Tags        Console
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "File to attach"
// @Success     200 {object} attachmentResp
// @Failure     400 {object} response.Resp "Missing, empty, oversized or unsupported file"
// @Router      /api/v1/console/attachment [POST]
func (h *handler) Attach(c *gin.Context) {
	ctx := c.Request.Context()

	input, closeFn, err := h.processAttachReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	defer closeFn()

	att, err := h.uc.Attach(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Attach: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newAttachmentResp(&att))
}

// ClearAttachment godoc
// @Summary     Remove the staged attachment
// @Tags        Console
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/console/attachment [DELETE]
func (h *handler) ClearAttachment(c *gin.Context) {
	ctx := c.Request.Context()

	h.uc.ClearAttachment(ctx)

	response.OK(c, nil)
}

// Reset godoc
// @Summary     Start a fresh conversation
// @Description Clears the history back to a single greeting. Any reply still in
//              flight is discarded when it resolves.
// @Tags        Console
// @Produce     json
// @Success     200 {object} resetResp
// @Router      /api/v1/console/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	output := h.uc.Reset(ctx)

	response.OK(c, h.newResetResp(output))
}

// Memory godoc
// @Summary     Read the memory side panel
// @Description Pure read of the last successfully fetched snapshot.
// @Tags        Console
// @Produce     json
// @Success     200 {object} memoryResp
// @Router      /api/v1/console/memory [GET]
func (h *handler) Memory(c *gin.Context) {
	ctx := c.Request.Context()

	view := h.uc.Memory(ctx, h.scope(c))

	response.OK(c, newMemoryResp(view))
}

// RefreshMemory godoc
// @Summary     Refresh the memory side panel
// @Description Fetches a fresh snapshot from the agent. A failed fetch keeps
//              the prior snapshot on display.
// @Tags        Console
// @Produce     json
// @Success     200 {object} memoryResp
// @Router      /api/v1/console/memory/refresh [POST]
func (h *handler) RefreshMemory(c *gin.Context) {
	ctx := c.Request.Context()

	view := h.uc.RefreshMemory(ctx, h.scope(c))

	response.OK(c, newMemoryResp(view))
}

// Profile godoc
// @Summary     Read the session profile
// @Tags        Console
// @Produce     json
// @Success     200 {object} profileResp
// @Router      /api/v1/console/profile [GET]
func (h *handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()

	profile := h.uc.Profile(ctx)

	response.OK(c, newProfileResp(profile))
}

// AuthURL godoc
// @Summary     Resolve the Google consent URL
// @Tags        Console
// @Produce     json
// @Success     200 {object} authURLResp
// @Failure     500 {object} response.Resp
// @Router      /api/v1/console/auth/url [GET]
func (h *handler) AuthURL(c *gin.Context) {
	ctx := c.Request.Context()

	url, err := h.uc.AuthURL(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.AuthURL: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, authURLResp{URL: url})
}

// Logout godoc
// @Summary     End the session
// @Description Ends the backend session best-effort and resets local state.
//              Always succeeds from the caller's point of view.
// @Tags        Console
// @Produce     json
// @Success     200 {object} resetResp
// @Router      /api/v1/console/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	output := h.uc.Logout(ctx, h.scope(c))

	response.OK(c, h.newResetResp(output))
}
