package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/corebanc/bankledger_app/internal/core/ports/services"
	"github.com/corebanc/bankledger_app/internal/dto"
)

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

func newClientHandler(cs portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{clientService: cs}
}

// RegisterClientRoutes registers routes related to clients.
func RegisterClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := rg.Group("/clients")
	{
		clients.GET("/:id", h.getClient)
		clients.GET("/:id/accounts", h.listClientAccounts)
	}
	rg.GET("/accounts/search", h.searchAccounts)
}

// getClient godoc
// @Summary Get a client by ID
// @Description Retrieves a client together with their accounts
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	client, err := h.clientService.GetClientByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// listClientAccounts godoc
// @Summary List a client's accounts
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {array} dto.AccountResponse
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/accounts [get]
func (h *clientHandler) listClientAccounts(c *gin.Context) {
	clientID := c.Param("id")
	accounts, err := h.clientService.SearchAccounts(c.Request.Context(), &clientID, "")
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// searchAccounts godoc
// @Summary Search accounts by client
// @Description Lists the accounts of a client identified by ID or by document
// @Description number; at least one identifier is required
// @Tags clients
// @Produce json
// @Param clientID query string false "Client ID"
// @Param documentNumber query string false "Client document number"
// @Success 200 {array} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "No identifier supplied"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/search [get]
func (h *clientHandler) searchAccounts(c *gin.Context) {
	var clientID *string
	if v := c.Query("clientID"); v != "" {
		clientID = &v
	}

	accounts, err := h.clientService.SearchAccounts(c.Request.Context(), clientID, c.Query("documentNumber"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}
