package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/amenibouabdallah/JOBS-sub001/internal/model"
	"github.com/amenibouabdallah/JOBS-sub001/pkg/response"
)

// MustGetUserID extracts user_id from the Gin context. If the JWT
// middleware did not inject it, a 401 is written and ok is false; the
// caller should return immediately.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetRole extracts the account role from the Gin context.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// GetJeID extracts the caller's JE affiliation; empty for admins and
// participant accounts.
func GetJeID(c *gin.Context) string {
	v, _ := c.Get("je_id")
	s, _ := v.(string)
	return s
}

// GetParticipantID extracts the caller's participant record id; empty
// unless the account is a participant account.
func GetParticipantID(c *gin.Context) string {
	v, _ := c.Get("participant_id")
	s, _ := v.(string)
	return s
}

// mayActForJe reports whether the caller can act on the given JE: admins
// always, JE accounts only on their own record.
func mayActForJe(c *gin.Context, jeID string) bool {
	role, ok := MustGetRole(c)
	if !ok {
		return false
	}
	if role == model.RoleAdmin {
		return true
	}
	if GetJeID(c) == jeID && jeID != "" {
		return true
	}
	response.Forbidden(c, 10003, "access denied")
	return false
}

// mayActForParticipant reports whether the caller can act on the given
// participant: admins always, participant accounts on themselves, JE
// accounts on members of their own JE.
func mayActForParticipant(c *gin.Context, participantID, participantJeID string) bool {
	role, ok := MustGetRole(c)
	if !ok {
		return false
	}
	switch role {
	case model.RoleAdmin:
		return true
	case model.RoleParticipant:
		if GetParticipantID(c) == participantID {
			return true
		}
	case model.RoleJe:
		if GetJeID(c) == participantJeID && participantJeID != "" {
			return true
		}
	}
	response.Forbidden(c, 10003, "access denied")
	return false
}
