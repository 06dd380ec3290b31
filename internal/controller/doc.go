// Package controller applies input commands to the canvas.
//
// The Controller owns the cursor, the MOVE/DRAW mode, the PEN/ERASER
// tool, the palette selections and the last toggled point. Every grid
// write is reported to an Invalidator so the renderer redraws the
// touched cells; file work goes through a Persistence.
package controller
