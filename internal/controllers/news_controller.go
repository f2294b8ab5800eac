package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/aftral/kiosk_backend_v1/internal/content"
    "github.com/aftral/kiosk_backend_v1/internal/models"
    "github.com/aftral/kiosk_backend_v1/internal/ws"
)

type NewsController struct {
    Svc *content.Service
    Hub *ws.KioskHub
}

func (n *NewsController) List(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"data": n.Svc.Data().NewsItems})
}

type newsCreateRequest struct {
    Type      string `json:"type" binding:"required,oneof=NEWS PROMOTION"`
    Title     string `json:"title" binding:"required"`
    Summary   string `json:"summary"`
    Body      string `json:"body"`
    StartDate string `json:"startDate"`
    EndDate   string `json:"endDate"`
    Image     string `json:"image"`
    Priority  int    `json:"priority" binding:"omitempty,oneof=1 2"`
    CtaLabel  string `json:"ctaLabel"`
    CtaTarget string `json:"ctaTarget"`
}

func (n *NewsController) Create(c *gin.Context) {
    var req newsCreateRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    if req.Priority == 0 {
        req.Priority = 2
    }
    item := n.Svc.AddNewsItem(models.NewsItem{
        Type:      req.Type,
        Title:     req.Title,
        Summary:   req.Summary,
        Body:      req.Body,
        StartDate: req.StartDate,
        EndDate:   req.EndDate,
        Image:     req.Image,
        Priority:  req.Priority,
        CtaLabel:  req.CtaLabel,
        CtaTarget: req.CtaTarget,
    })
    n.Hub.NotifyContentChanged()
    c.JSON(http.StatusCreated, item)
}

func (n *NewsController) Update(c *gin.Context) {
    id := c.Param("id")
    var upd content.NewsUpdate
    if err := c.ShouldBindJSON(&upd); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    if !n.Svc.UpdateNewsItem(id, upd) {
        c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
        return
    }
    n.Hub.NotifyContentChanged()
    c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func (n *NewsController) Delete(c *gin.Context) {
    id := c.Param("id")
    if !n.Svc.DeleteNewsItem(id) {
        c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
        return
    }
    n.Hub.NotifyContentChanged()
    c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
