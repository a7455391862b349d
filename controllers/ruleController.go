package controllers

import (
	"ClinicSplit/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRuleRoutes registers the rule management routes: card fee rules
// and tiers, bonus rules and split rules.
func SetupRuleRoutes(router *gin.Engine, ruleHandler *handlers.RuleHandler) {
	router.GET("/card_fee_rules", ruleHandler.GetAllCardFeeRules)
	router.GET("/fee-tiers/current", ruleHandler.GetCurrentCardFeeRules)
	router.POST("/card_fee_rules", ruleHandler.CreateCardFeeRule)
	router.PUT("/card_fee_rules/:id", ruleHandler.UpdateCardFeeRule)
	router.DELETE("/card_fee_rules/:id", ruleHandler.DeleteCardFeeRule)

	router.GET("/card_fee_tiers", ruleHandler.GetAllCardFeeTiers)
	router.POST("/card_fee_tiers", ruleHandler.CreateCardFeeTier)
	router.DELETE("/card_fee_tiers/:id", ruleHandler.DeleteCardFeeTier)

	router.GET("/bonus_rules", ruleHandler.GetAllBonusRules)
	router.POST("/bonus_rules", ruleHandler.CreateBonusRule)
	router.PUT("/bonus_rules/:id", ruleHandler.UpdateBonusRule)
	router.DELETE("/bonus_rules/:id", ruleHandler.DeleteBonusRule)

	router.GET("/split_rules", ruleHandler.GetAllSplitRules)
	router.POST("/split_rules", ruleHandler.CreateSplitRule)
	router.PUT("/split_rules/:id", ruleHandler.UpdateSplitRule)
	router.DELETE("/split_rules/:id", ruleHandler.DeleteSplitRule)
}
