package handlers

import "github.com/gin-gonic/gin"

func (h *Handler) GetIngredients(c *gin.Context)   { list(c, "Ingredients", h.store.GetIngredients) }
func (h *Handler) GetIngredient(c *gin.Context)    { getByID(c, "Ingredient", h.store.GetIngredient) }
func (h *Handler) CreateIngredient(c *gin.Context) { create(c, "Ingredient", h.store.AddIngredient) }
func (h *Handler) UpdateIngredient(c *gin.Context) { update(c, "Ingredient", h.store.UpdateIngredient) }
func (h *Handler) DeleteIngredient(c *gin.Context) { remove(c, "Ingredient", h.store.DeleteIngredient) }

func (h *Handler) GetEquipment(c *gin.Context)     { list(c, "Equipment", h.store.GetEquipment) }
func (h *Handler) GetEquipmentItem(c *gin.Context) { getByID(c, "Equipment", h.store.GetEquipmentItem) }
func (h *Handler) CreateEquipment(c *gin.Context)  { create(c, "Equipment", h.store.AddEquipment) }
func (h *Handler) UpdateEquipment(c *gin.Context)  { update(c, "Equipment", h.store.UpdateEquipment) }
func (h *Handler) DeleteEquipment(c *gin.Context)  { remove(c, "Equipment", h.store.DeleteEquipment) }
