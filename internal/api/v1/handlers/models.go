package handlers

import "ulascansenturk/weather-wear/internal/service"

type WeatherResponse = service.WeatherReport

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
