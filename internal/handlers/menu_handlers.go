package handlers

import "github.com/gin-gonic/gin"

func (h *Handler) GetMenus(c *gin.Context) { list(c, "Menus", h.store.GetMenus) }

// GetMenu returns one menu with its items.
func (h *Handler) GetMenu(c *gin.Context)    { getByID(c, "Menu", h.store.GetMenu) }
func (h *Handler) CreateMenu(c *gin.Context) { create(c, "Menu", h.store.AddMenu) }
func (h *Handler) UpdateMenu(c *gin.Context) { update(c, "Menu", h.store.UpdateMenu) }
func (h *Handler) DeleteMenu(c *gin.Context) { remove(c, "Menu", h.store.DeleteMenu) }

func (h *Handler) GetMenuItems(c *gin.Context) { list(c, "Menu items", h.store.GetMenuItems) }
func (h *Handler) GetMenuItemsByMenu(c *gin.Context) {
	listByParent(c, "Menu items", "menu", h.store.GetMenuItemsByMenu)
}
func (h *Handler) GetMenuItem(c *gin.Context)    { getByID(c, "Menu item", h.store.GetMenuItem) }
func (h *Handler) CreateMenuItem(c *gin.Context) { create(c, "Menu item", h.store.AddMenuItem) }
func (h *Handler) UpdateMenuItem(c *gin.Context) { update(c, "Menu item", h.store.UpdateMenuItem) }
func (h *Handler) DeleteMenuItem(c *gin.Context) { remove(c, "Menu item", h.store.DeleteMenuItem) }

// GetRecipe lists the costed recipe lines of a menu item.
func (h *Handler) GetRecipe(c *gin.Context) {
	listByParent(c, "Recipe", "menu item", h.store.GetRecipe)
}
func (h *Handler) CreateRecipeLine(c *gin.Context) { create(c, "Recipe line", h.store.AddRecipeLine) }
func (h *Handler) UpdateRecipeLine(c *gin.Context) { update(c, "Recipe line", h.store.UpdateRecipeLine) }
func (h *Handler) DeleteRecipeLine(c *gin.Context) { remove(c, "Recipe line", h.store.DeleteRecipeLine) }
