package handlers

import (
	"ClinicSplit/models"
	"ClinicSplit/services"
	"ClinicSplit/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type RuleHandler struct {
	service *services.RuleService
}

func NewRuleHandler(service *services.RuleService) *RuleHandler {
	return &RuleHandler{service: service}
}

func (h *RuleHandler) GetAllCardFeeRules(c *gin.Context) {
	rules, err := h.service.ListCardFeeRules(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, rules)
}

// GetCurrentCardFeeRules returns the rules in force today, after tier
// resolution.
func (h *RuleHandler) GetCurrentCardFeeRules(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	rules, err := h.service.ActiveCardFeeRules(c, date)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, rules)
}

func (h *RuleHandler) CreateCardFeeRule(c *gin.Context) {
	var rule models.CardFeeRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateCardFeeRule(rule); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateCardFeeRule(c, &rule); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, rule)
}

func (h *RuleHandler) UpdateCardFeeRule(c *gin.Context) {
	id := c.Param("id")
	var rule models.CardFeeRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	rule.ID = id
	if err := utils.ValidateCardFeeRule(rule); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateCardFeeRule(c, &rule); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, rule)
}

func (h *RuleHandler) DeleteCardFeeRule(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteCardFeeRule(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Card fee rule deleted"})
}

func (h *RuleHandler) GetAllCardFeeTiers(c *gin.Context) {
	tiers, err := h.service.ListCardFeeTiers(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, tiers)
}

// CreateCardFeeTier creates a tier with its per-method rates in one call.
func (h *RuleHandler) CreateCardFeeTier(c *gin.Context) {
	var payload struct {
		Tier  models.CardFeeTier       `json:"tier"`
		Rates []models.CardFeeTierRate `json:"rates"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateCardFeeTier(payload.Tier, payload.Rates); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateCardFeeTier(c, &payload.Tier, payload.Rates); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, payload.Tier)
}

func (h *RuleHandler) DeleteCardFeeTier(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteCardFeeTier(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Card fee tier deleted"})
}

func (h *RuleHandler) GetAllBonusRules(c *gin.Context) {
	rules, err := h.service.ListBonusRules(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, rules)
}

func (h *RuleHandler) CreateBonusRule(c *gin.Context) {
	var rule models.BonusRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateBonusRule(rule); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateBonusRule(c, &rule); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, rule)
}

func (h *RuleHandler) UpdateBonusRule(c *gin.Context) {
	id := c.Param("id")
	var rule models.BonusRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	rule.ID = id
	if err := utils.ValidateBonusRule(rule); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateBonusRule(c, &rule); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, rule)
}

func (h *RuleHandler) DeleteBonusRule(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteBonusRule(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Bonus rule deleted"})
}

func (h *RuleHandler) GetAllSplitRules(c *gin.Context) {
	rules, err := h.service.ListSplitRules(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, rules)
}

func (h *RuleHandler) CreateSplitRule(c *gin.Context) {
	var rule models.SplitRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateSplitRule(rule); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateSplitRule(c, &rule); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, rule)
}

func (h *RuleHandler) UpdateSplitRule(c *gin.Context) {
	id := c.Param("id")
	var rule models.SplitRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	rule.ID = id
	if err := utils.ValidateSplitRule(rule); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateSplitRule(c, &rule); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, rule)
}

func (h *RuleHandler) DeleteSplitRule(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteSplitRule(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Split rule deleted"})
}
