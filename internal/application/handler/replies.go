package handler

import (
	"fmt"

	"github.com/avaldez/pedidosbot/internal/domain"
)

// Reply templates, kept verbatim from the bot's original copy.

const ProfanityReply = "⚠️ *Lenguaje inapropiado detectado*\n\n" +
	"Por favor mantén un tono respetuoso.\n" +
	"Estoy aquí para ayudarte con tu pedido."

const GreetingReply = "¡Hola! 👋 Soy tu asistente virtual.\n\n" +
	"Para consultar tu pedido, envía tu *código de seguimiento*.\n" +
	"Ejemplo: `PED-123`\n\n" +
	"También puedes escribir *ayuda* para más información."

const HelpReply = "🤖 *Comandos disponibles:*\n\n" +
	"• `hola` - Saludo inicial\n" +
	"• `XXX-123` - Consultar pedido\n" +
	"• `ayuda` - Mostrar esta ayuda\n\n" +
	"Ejemplos de códigos:\n" +
	"• `PED-123`\n" +
	"• `ORD-456`\n" +
	"• `FAC-789`"

const UnknownReply = "🔍 *No reconozco tu solicitud*\n\n" +
	"Envía tu *código de seguimiento* (ej: `PED-123`)\n" +
	"o escribe *hola* para comenzar.\n" +
	"Para ayuda, escribe *ayuda*."

func NotFoundReply(requesterID, code string) string {
	return fmt.Sprintf("❌ *Pedido no encontrado*\n\n"+
		"Usuario: %s\n"+
		"Código: %s\n\n"+
		"Verifica los datos e intenta nuevamente.", requesterID, code)
}

func StatusReply(rec *domain.OrderRecord) string {
	return fmt.Sprintf("📦 *Estado de tu pedido* 📦\n\n"+
		"• Código: %s\n"+
		"• Producto: %s\n"+
		"• Estado: %s\n"+
		"• Fecha: %s\n"+
		"• Cliente: %s\n"+
		"• Total: $%s\n\n"+
		"¿Necesitas más ayuda? Escribe *ayuda* para opciones.",
		rec.Code, rec.Product, rec.Status, rec.UpdatedAt, rec.Customer, rec.TotalAmount)
}
