package disease

// Sarampo is the measles/rubella module. Field names follow the Go.Data
// questionnaire for the exanthematous disease outbreak; columns are the
// SINAN measles export.
func Sarampo() Spec {
	return Spec{
		Name: "sarampo",
		Questionnaire: []Field{
			{Name: "resultado_rubeola_s2_igg", Type: FieldString},
			{Name: "resultado_rubeola_s2_igm", Type: FieldString},
			{Name: "resultado_sarampo_s2_igg", Type: FieldString},
			{Name: "resultado_sarampo_s2_igm", Type: FieldString},
			{Name: "data_da_coleta_s_2", Type: FieldDate},
			{Name: "resultado_rubeola_s1_igg", Type: FieldString},
			{Name: "resultado_rubeola_s_1_ig_m_", Type: FieldString},
			{Name: "resultado_sarampo_s1_igg", Type: FieldString},
			{Name: "resultado_sarampo_s_1_ig_m_", Type: FieldString},
			{Name: "data_da_coleta_s_1", Type: FieldDate},
			{Name: "contato_com_caso_suspeito_ou_confirmado_de_sarampo_ou_rubeola_ate_23_dias_antes_do_inicio_dos_sinais_e_sintomas", Type: FieldString},
			{Name: "tomou_vacina_contra_sarampo_e_rubeola_dupla_triplice_viral_e_tetraviral", Type: FieldString},
			{Name: "data_do_inicio_da_febre", Type: FieldDate},
			{Name: "data_do_inicio_do_enxantema_manchas_vermelhas_pelo_corpo", Type: FieldDate},
			{Name: "nome_da_mae", Type: FieldString},
			{Name: "municipio_de_notificacao", Type: FieldLocation},
		},
		Columns: map[string]string{
			"resultado_rubeola_s2_igg":    "ID_S2_IGG_",
			"resultado_rubeola_s2_igm":    "ID_S2_IGM_",
			"resultado_sarampo_s2_igg":    "ID_S2_IGG",
			"resultado_sarampo_s2_igm":    "ID_S2_IGM",
			"data_da_coleta_s_2":          "DT_COL_2",
			"resultado_rubeola_s1_igg":    "ID_S1_IGG_",
			"resultado_rubeola_s_1_ig_m_": "ID_S1_IGM_",
			"resultado_sarampo_s1_igg":    "ID_S1_IGG",
			"resultado_sarampo_s_1_ig_m_": "ID_S1_IGM_",
			"data_da_coleta_s_1":          "DT_COL_1",
			"contato_com_caso_suspeito_ou_confirmado_de_sarampo_ou_rubeola_ate_23_dias_antes_do_inicio_dos_sinais_e_sintomas": "CS_FONTE",
			"tomou_vacina_contra_sarampo_e_rubeola_dupla_triplice_viral_e_tetraviral":                                         "CS_VACINA",
			"data_do_inicio_da_febre": "DT_FEBRE",
			"data_do_inicio_do_enxantema_manchas_vermelhas_pelo_corpo": "DT_INICIO_",
			"nome_da_mae":              "NM_MAE_PAC",
			"municipio_de_notificacao": "ID_MUNICIP",
		},
		Classification: map[string]string{
			"1": "SARAMPO",
			"2": "RUBEOLA",
			"3": "DISCARDED",
		},
		Outcome: map[string]string{
			"1": "CURA",
			"2": "ÓBITO POR DOENÇA EXANTEMÁTICA",
			"3": "ÓBITO POR OUTRAS CAUSAS",
		},
	}
}
