package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"venuehub/internal/domain"
	"venuehub/internal/domain/entities"
)

type groupJSON struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type messageJSON struct {
	ID        uint      `json:"id"`
	GroupID   string    `json:"group_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type groupInput struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

type messageInput struct {
	Content string `form:"content" json:"content"`
}

func toGroupJSON(g entities.Group) groupJSON {
	return groupJSON{
		ID:          g.ID.String(),
		Name:        g.Name,
		Description: g.Description,
		OwnerID:     g.OwnerID,
		CreatedAt:   g.CreatedAt,
	}
}

func toMessageJSON(m entities.Message) messageJSON {
	return messageJSON{
		ID:        m.ID,
		GroupID:   m.GroupID.String(),
		UserID:    m.UserID,
		Username:  m.Username,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

// groupID parses the :group_id parameter; malformed ids are unknown groups.
func groupID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("group_id"))
	if err != nil {
		return uuid.Nil, domain.ErrGroupNotFound
	}
	return id, nil
}

// ChatIndex renders the live chat page with every group.
func (h *Handler) ChatIndex(c *gin.Context) {
	groups, err := h.chat.ListGroups(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "chat", h.t(c, "ui.live_chat", nil), groups)
}

// Messages returns the recent messages of a group, oldest first.
func (h *Handler) Messages(c *gin.Context) {
	id, err := groupID(c)
	if err != nil {
		h.writeJSONError(c, err)
		return
	}
	msgs, err := h.chat.ListMessages(c.Request.Context(), id)
	if err != nil {
		h.writeJSONError(c, err)
		return
	}
	out := make([]messageJSON, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessageJSON(m))
	}
	c.JSON(http.StatusOK, gin.H{"messages": out})
}

// PostMessage posts to a group as the current user.
func (h *Handler) PostMessage(c *gin.Context) {
	id, err := groupID(c)
	if err != nil {
		h.writeJSONError(c, err)
		return
	}
	var in messageInput
	_ = c.ShouldBind(&in)

	user, _ := currentUser(c)
	msg, err := h.chat.PostMessage(c.Request.Context(), *user, id, in.Content)
	if err != nil {
		h.writeJSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMessageJSON(*msg))
}

// Groups lists every chat group.
func (h *Handler) Groups(c *gin.Context) {
	groups, err := h.chat.ListGroups(c.Request.Context())
	if err != nil {
		h.writeJSONError(c, err)
		return
	}
	out := make([]groupJSON, 0, len(groups))
	for _, g := range groups {
		out = append(out, toGroupJSON(g))
	}
	c.JSON(http.StatusOK, gin.H{"groups": out})
}

// CreateGroup creates a group owned by the current user.
func (h *Handler) CreateGroup(c *gin.Context) {
	var in groupInput
	_ = c.ShouldBind(&in)

	user, _ := currentUser(c)
	g, err := h.chat.CreateGroup(c.Request.Context(), *user, in.Name, in.Description)
	if err != nil {
		h.writeJSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toGroupJSON(*g))
}

// Group returns one chat group.
func (h *Handler) Group(c *gin.Context) {
	id, err := groupID(c)
	if err != nil {
		h.writeJSONError(c, err)
		return
	}
	g, err := h.chat.GetGroup(c.Request.Context(), id)
	if err != nil {
		h.writeJSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGroupJSON(*g))
}

// UpdateGroup renames a group; only its owner may.
func (h *Handler) UpdateGroup(c *gin.Context) {
	id, err := groupID(c)
	if err != nil {
		h.writeJSONError(c, err)
		return
	}
	var in groupInput
	_ = c.ShouldBind(&in)

	user, _ := currentUser(c)
	g, err := h.chat.UpdateGroup(c.Request.Context(), *user, id, in.Name, in.Description)
	if err != nil {
		h.writeJSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGroupJSON(*g))
}

// DeleteGroup removes a group and its messages; only its owner may.
func (h *Handler) DeleteGroup(c *gin.Context) {
	id, err := groupID(c)
	if err != nil {
		h.writeJSONError(c, err)
		return
	}
	user, _ := currentUser(c)
	if err := h.chat.DeleteGroup(c.Request.Context(), *user, id); err != nil {
		h.writeJSONError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
