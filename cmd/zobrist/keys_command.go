package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"chess-zobrist/board"
	"chess-zobrist/zobrist"
)

const (
	sectionAll       = "all"
	sectionPieces    = "pieces"
	sectionSide      = "side"
	sectionCastling  = "castling"
	sectionEnPassant = "enpassant"
)

const zobristPieceChars = "PNBRQKpnbrqk"

// keySlot is one table entry with its position in the draw order.
type keySlot struct {
	draw    int
	section string
	label   string
	key     zobrist.Key
}

// tableSlots lists every key of tbl in draw order.
func tableSlots(tbl *zobrist.Table) []keySlot {
	slots := make([]keySlot, 0, zobrist.KeyCount)
	for p := 0; p < zobrist.PieceKinds; p++ {
		for sq := 0; sq < zobrist.Squares; sq++ {
			slots = append(slots, keySlot{
				section: sectionPieces,
				label:   fmt.Sprintf("%c@%v", zobristPieceChars[p], board.Square(sq)),
				key:     tbl.PieceSquare(p, sq),
			})
		}
	}
	slots = append(slots, keySlot{section: sectionSide, label: "black to move", key: tbl.SideToMove()})
	for cr, name := range []string{"K", "Q", "k", "q"} {
		slots = append(slots, keySlot{
			section: sectionCastling,
			label:   "castling " + name,
			key:     tbl.Castling(zobrist.CastlingRight(cr)),
		})
	}
	for f := 0; f < zobrist.Files; f++ {
		slots = append(slots, keySlot{
			section: sectionEnPassant,
			label:   fmt.Sprintf("en passant %c", 'a'+f),
			key:     tbl.EnPassantFile(f),
		})
	}
	for i := range slots {
		slots[i].draw = i
	}
	return slots
}

func newKeysCommand(ctx *commandContext) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Dump the key table in draw order",
		RunE: func(cmd *cobra.Command, args []string) error {
			section = strings.ToLower(strings.TrimSpace(section))
			switch section {
			case sectionAll, sectionPieces, sectionSide, sectionCastling, sectionEnPassant:
			default:
				return fmt.Errorf("unknown section %q", section)
			}

			var rows [][]string
			for _, slot := range tableSlots(zobrist.Default()) {
				if section != sectionAll && slot.section != section {
					continue
				}
				rows = append(rows, []string{strconv.Itoa(slot.draw), slot.label, ctx.formatKey(slot.key)})
			}
			ctx.logger.Debug("dumping keys", "section", section, "count", len(rows))
			return ctx.writeRows(cmd.OutOrStdout(), []string{"Draw", "Feature", "Key"}, rows,
				[]columnAlignment{alignRight, alignLeft, alignRight})
		},
	}

	cmd.Flags().StringVarP(&section, "section", "s", sectionAll, "Section: all, pieces, side, castling or enpassant")
	return cmd
}
